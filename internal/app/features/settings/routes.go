// internal/app/features/settings/routes.go
package settings

import (
	"github.com/dalemusser/tradedesk/internal/app/manifest"
	"github.com/go-chi/chi/v5"
)

// MountRoutes mounts the settings routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.ServeSettings)
	r.Put("/", h.HandleSettings)
}

// Module registers myApp.settings.
func Module(h *Handler) manifest.Module {
	return manifest.Module{
		Name: "myApp.settings",
		Kind: manifest.KindFeature,
		View: "/settings",
		Mount: func(r chi.Router) {
			r.Route("/api/settings", h.MountRoutes)
		},
	}
}
