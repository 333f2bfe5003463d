package events_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dalemusser/tradedesk/internal/app/features/events"
	eventstore "github.com/dalemusser/tradedesk/internal/app/store/events"
	"github.com/dalemusser/tradedesk/internal/app/system/exchangeset"
	"github.com/dalemusser/tradedesk/internal/domain/models"
	"github.com/dalemusser/tradedesk/internal/testutil"
	"go.uber.org/zap"
)

var testExchanges = exchangeset.New("Kraken", "Bitstamp")

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return events.Routes(events.NewHandler(eventstore.New(db), testExchanges, zap.NewNop()))
}

func TestModule(t *testing.T) {
	m := events.Module(events.NewHandler(nil, testExchanges, zap.NewNop()))
	if m.Name != "ui-notification" || m.View != "/events" || m.Mount == nil {
		t.Errorf("unexpected module: %+v", m)
	}
}

func TestCreate_Rejected(t *testing.T) {
	// Checked before the store is touched, so no DB is needed.
	r := events.Routes(events.NewHandler(nil, testExchanges, zap.NewNop()))

	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{"missing price", `{"exchange":"Kraken","pair":"BTCUSD","condition":">"}`, http.StatusBadRequest, `"price":"gt=0"`},
		{"bad pair", `{"exchange":"Kraken","pair":"BTC-USD","condition":">","price":1}`, http.StatusBadRequest, `"pair":"alphanum"`},
		{"unknown item", `{"exchange":"Kraken","pair":"BTCUSD","item":"VOLUME","condition":">","price":1}`, http.StatusBadRequest, `"item":"eq=PRICE"`},
		{"unknown condition", `{"exchange":"Kraken","pair":"BTCUSD","condition":"!=","price":1}`, http.StatusBadRequest, `"condition"`},
		{"disabled exchange", `{"exchange":"Huobi","pair":"BTCCNY","condition":">","price":1}`, http.StatusUnprocessableEntity, "not enabled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.NewRecorder()
			r.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodPost, "/", tt.body))
			rec.AssertStatus(t, tt.status)
			rec.AssertContains(t, tt.want)
		})
	}
}

func TestDelete_InvalidID(t *testing.T) {
	r := events.Routes(events.NewHandler(nil, testExchanges, zap.NewNop()))

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodDelete, "/nope", ""))
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestCreateListDelete(t *testing.T) {
	r := newTestRouter(t)

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodPost, "/",
		`{"exchange":"kraken","pair":"btcusd","condition":">=","price":100}`))
	rec.AssertStatus(t, http.StatusCreated)

	var created models.PriceEvent
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Exchange != "Kraken" || created.Pair != "BTCUSD" || created.Item != models.ItemPrice || created.Executed {
		t.Errorf("created: %+v", created)
	}

	rec = testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodGet, "/", ""))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, created.ID.Hex())
	rec.AssertContains(t, `"total":1`)
	rec.AssertContains(t, `"executed":0`)

	rec = testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodDelete, "/"+created.ID.Hex(), ""))
	rec.AssertStatus(t, http.StatusNoContent)

	rec = testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodDelete, "/"+created.ID.Hex(), ""))
	rec.AssertStatus(t, http.StatusNotFound)
}
