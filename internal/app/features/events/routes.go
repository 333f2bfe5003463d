package events

import (
	"github.com/dalemusser/tradedesk/internal/app/manifest"
	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter mounted under /api/events.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Delete("/{id}", h.Delete)
	return r
}

// Module backs ui-notification: the browser library shows the alerts these
// events raise on the ticker stream.
func Module(h *Handler) manifest.Module {
	return manifest.Module{
		Name: "ui-notification",
		Kind: manifest.KindFeature,
		View: "/events",
		Mount: func(r chi.Router) {
			r.Mount("/api/events", Routes(h))
		},
	}
}
