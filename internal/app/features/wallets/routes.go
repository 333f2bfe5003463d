package wallets

import (
	"github.com/dalemusser/tradedesk/internal/app/manifest"
	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter mounted under /api/wallets.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Upsert)
	r.Get("/summary", h.Summary)
	r.Delete("/{id}", h.Delete)
	return r
}

// Module registers myApp.wallets.
func Module(h *Handler) manifest.Module {
	return manifest.Module{
		Name: "myApp.wallets",
		Kind: manifest.KindFeature,
		View: "/wallets",
		Mount: func(r chi.Router) {
			r.Mount("/api/wallets", Routes(h))
		},
	}
}
