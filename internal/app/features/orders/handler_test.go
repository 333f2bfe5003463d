package orders_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dalemusser/tradedesk/internal/app/features/orders"
	orderstore "github.com/dalemusser/tradedesk/internal/app/store/orders"
	"github.com/dalemusser/tradedesk/internal/app/system/exchangeset"
	"github.com/dalemusser/tradedesk/internal/domain/models"
	"github.com/dalemusser/tradedesk/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func mount(h *orders.Handler) chi.Router {
	r := chi.NewRouter()
	for _, m := range orders.Modules(h) {
		m.Mount(r)
	}
	return r
}

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return mount(orders.NewHandler(orderstore.New(db), exchangeset.New("Kraken"), zap.NewNop()))
}

func TestModules_Names(t *testing.T) {
	mods := orders.Modules(orders.NewHandler(nil, exchangeset.New(), zap.NewNop()))
	want := []string{"myApp.buy", "myApp.sell", "myApp.buyOrders", "myApp.sellOrders"}
	if len(mods) != len(want) {
		t.Fatalf("got %d modules", len(mods))
	}
	for i, m := range mods {
		if m.Name != want[i] {
			t.Errorf("module %d: got %q, want %q", i, m.Name, want[i])
		}
	}
}

func TestPlace_RejectsDisabledExchange(t *testing.T) {
	r := mount(orders.NewHandler(nil, exchangeset.New("Kraken"), zap.NewNop()))

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodPost, "/api/orders/buy",
		`{"exchange":"Poloniex","pair":"BTCUSD","price":100,"amount":1}`))
	rec.AssertStatus(t, http.StatusUnprocessableEntity)
}

func TestPlace_ValidatesAmounts(t *testing.T) {
	r := mount(orders.NewHandler(nil, exchangeset.New("Kraken"), zap.NewNop()))

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodPost, "/api/orders/sell",
		`{"exchange":"Kraken","pair":"BTCUSD","price":0,"amount":-2}`))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, `"price":"gt=0"`)
	rec.AssertContains(t, `"amount":"gt=0"`)
}

func TestPlaceListCancel(t *testing.T) {
	r := newTestRouter(t)

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodPost, "/api/orders/buy",
		`{"exchange":"kraken","pair":"btcusd","price":100,"amount":1}`))
	rec.AssertStatus(t, http.StatusCreated)

	var placed models.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &placed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if placed.Exchange != "Kraken" || placed.Pair != "BTCUSD" || placed.Side != models.SideBuy {
		t.Errorf("placed: %+v", placed)
	}
	if placed.ClientRef == "" {
		t.Error("expected a generated client ref")
	}

	rec = testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodGet, "/api/orders/sell", ""))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"data":[]`)

	// A buy order cannot be cancelled through the sell book.
	rec = testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodPost, "/api/orders/sell/"+placed.ID.Hex()+"/cancel", ""))
	rec.AssertStatus(t, http.StatusNotFound)

	rec = testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodPost, "/api/orders/buy/"+placed.ID.Hex()+"/cancel", ""))
	rec.AssertStatus(t, http.StatusOK)

	rec = testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodPost, "/api/orders/buy/"+placed.ID.Hex()+"/cancel", ""))
	rec.AssertStatus(t, http.StatusConflict)
}
