package orders

import (
	"github.com/dalemusser/tradedesk/internal/app/manifest"
	"github.com/dalemusser/tradedesk/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Modules returns the four order modules: placing buys and sells, and the
// open buy and sell order books.
func Modules(h *Handler) []manifest.Module {
	return []manifest.Module{
		{
			Name: "myApp.buy", Kind: manifest.KindFeature, View: "/buy",
			Mount: func(r chi.Router) { r.Post("/api/orders/buy", h.Place(models.SideBuy)) },
		},
		{
			Name: "myApp.sell", Kind: manifest.KindFeature, View: "/sell",
			Mount: func(r chi.Router) { r.Post("/api/orders/sell", h.Place(models.SideSell)) },
		},
		{
			Name: "myApp.buyOrders", Kind: manifest.KindFeature, View: "/buy-orders",
			Mount: func(r chi.Router) {
				r.Get("/api/orders/buy", h.List(models.SideBuy))
				r.Post("/api/orders/buy/{id}/cancel", h.Cancel(models.SideBuy))
			},
		},
		{
			Name: "myApp.sellOrders", Kind: manifest.KindFeature, View: "/sell-orders",
			Mount: func(r chi.Router) {
				r.Get("/api/orders/sell", h.List(models.SideSell))
				r.Post("/api/orders/sell/{id}/cancel", h.Cancel(models.SideSell))
			},
		},
	}
}
