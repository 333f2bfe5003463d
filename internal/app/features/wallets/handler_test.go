package wallets_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dalemusser/tradedesk/internal/app/features/wallets"
	walletstore "github.com/dalemusser/tradedesk/internal/app/store/wallets"
	"github.com/dalemusser/tradedesk/internal/domain/models"
	"github.com/dalemusser/tradedesk/internal/testutil"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return wallets.Routes(wallets.NewHandler(walletstore.New(db), zap.NewNop()))
}

func TestModule(t *testing.T) {
	m := wallets.Module(wallets.NewHandler(nil, zap.NewNop()))
	if m.Name != "myApp.wallets" || m.View != "/wallets" || m.Mount == nil {
		t.Errorf("unexpected module: %+v", m)
	}
}

func TestUpsert_ValidationFails(t *testing.T) {
	// Validation happens before the store is touched, so no DB is needed.
	r := wallets.Routes(wallets.NewHandler(nil, zap.NewNop()))

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodPost, "/", `{"address":"","coinType":"BTC","balance":-1}`))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, `"address":"required"`)
	rec.AssertContains(t, `"balance":"gte=0"`)
}

func TestDelete_InvalidID(t *testing.T) {
	r := wallets.Routes(wallets.NewHandler(nil, zap.NewNop()))

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodDelete, "/not-an-id", ""))
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestUpsertThenSummary(t *testing.T) {
	r := newTestRouter(t)

	for _, body := range []string{
		`{"address":"1abc","coinType":"btc","balance":1.5,"description":"Personal"}`,
		`{"address":"exch","coinType":"BTC","balance":0.5,"description":"Exchange"}`,
		`{"address":"Lxyz","coinType":"LTC","balance":4}`,
	} {
		rec := testutil.NewRecorder()
		r.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodPost, "/", body))
		rec.AssertStatus(t, http.StatusOK)
	}

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodGet, "/summary", ""))
	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Data []models.CoinTotal `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("coins: got %d, want 2", len(resp.Data))
	}
	if resp.Data[0].CoinType != "BTC" || resp.Data[0].Balance != 2 || resp.Data[0].Addresses != 2 {
		t.Errorf("BTC total: %+v", resp.Data[0])
	}
}
