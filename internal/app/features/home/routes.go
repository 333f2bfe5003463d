package home

import (
	"net/http"

	"github.com/dalemusser/tradedesk/internal/app/manifest"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the shell, the descriptor and static assets on r.
// static may be nil when there is no web root.
func Routes(h *Handler, static http.Handler) func(r chi.Router) {
	return func(r chi.Router) {
		r.Get("/", h.ServeRoot)
		r.Get("/app/bootstrap.json", h.ServeBootstrap)
		if static != nil {
			r.Handle("/static/*", static)
		}
	}
}

// Module registers myApp.home.
func Module(h *Handler, static http.Handler) manifest.Module {
	return manifest.Module{
		Name:  "myApp.home",
		Kind:  manifest.KindFeature,
		Mount: Routes(h, static),
	}
}
