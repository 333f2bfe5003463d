package exchanges

import (
	"net/http"

	"github.com/dalemusser/tradedesk/internal/app/manifest"
	"github.com/dalemusser/tradedesk/internal/app/system/exchangeset"
	"github.com/dalemusser/tradedesk/internal/app/system/jsonapi"
	"github.com/go-chi/chi/v5"
)

// Handler lists the exchanges enabled in config.
type Handler struct {
	Exchanges exchangeset.Set
}

// NewHandler constructs an exchanges Handler.
func NewHandler(set exchangeset.Set) *Handler {
	return &Handler{Exchanges: set}
}

// Enabled handles GET /api/exchanges/enabled.
func (h *Handler) Enabled(w http.ResponseWriter, r *http.Request) {
	jsonapi.WriteJSON(w, http.StatusOK, map[string]any{"data": h.Exchanges.Names()})
}

// Module registers myApp.enabledExchanges.
func Module(h *Handler) manifest.Module {
	return manifest.Module{
		Name: "myApp.enabledExchanges",
		Kind: manifest.KindFeature,
		View: "/exchanges",
		Mount: func(r chi.Router) {
			r.Get("/api/exchanges/enabled", h.Enabled)
		},
	}
}
