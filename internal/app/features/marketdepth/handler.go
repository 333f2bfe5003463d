package marketdepth

import (
	"net/http"
	"strings"

	"github.com/dalemusser/tradedesk/internal/app/manifest"
	orderstore "github.com/dalemusser/tradedesk/internal/app/store/orders"
	"github.com/dalemusser/tradedesk/internal/app/system/exchangeset"
	"github.com/dalemusser/tradedesk/internal/app/system/jsonapi"
	"github.com/dalemusser/tradedesk/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the depth chart data.
type Handler struct {
	Orders    *orderstore.Store
	Exchanges exchangeset.Set
	Log       *zap.Logger
}

// NewHandler constructs a marketdepth Handler.
func NewHandler(orders *orderstore.Store, exchanges exchangeset.Set, logger *zap.Logger) *Handler {
	return &Handler{Orders: orders, Exchanges: exchanges, Log: logger}
}

// Serve handles GET /api/depth/{exchange}/{pair}.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	exchange, ok := h.Exchanges.Canonical(chi.URLParam(r, "exchange"))
	if !ok {
		jsonapi.WriteError(w, http.StatusNotFound, "exchange is not enabled")
		return
	}
	pair := strings.ToUpper(chi.URLParam(r, "pair"))

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "market depth")
	defer cancel()

	open, err := h.Orders.ListOpen(ctx, orderstore.Filter{Exchange: exchange, Pair: pair})
	if err != nil {
		h.Log.Error("market depth: list orders failed", zap.Error(err),
			zap.String("exchange", exchange), zap.String("pair", pair))
		jsonapi.WriteError(w, http.StatusInternalServerError, "could not load order book")
		return
	}
	jsonapi.WriteJSON(w, http.StatusOK, Build(exchange, pair, open))
}

// Module registers myApp.charts.market-depth.
func Module(h *Handler) manifest.Module {
	return manifest.Module{
		Name: "myApp.charts.market-depth",
		Kind: manifest.KindFeature,
		View: "/charts/market-depth",
		Mount: func(r chi.Router) {
			r.Get("/api/depth/{exchange}/{pair}", h.Serve)
		},
	}
}
