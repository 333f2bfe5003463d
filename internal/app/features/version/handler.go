package version

import (
	"net/http"

	"github.com/dalemusser/tradedesk/internal/app/manifest"
	"github.com/dalemusser/tradedesk/internal/app/system/jsonapi"
	buildversion "github.com/dalemusser/tradedesk/internal/version"
	"github.com/go-chi/chi/v5"
)

// Serve handles GET /api/version.
func Serve(w http.ResponseWriter, r *http.Request) {
	jsonapi.WriteJSON(w, http.StatusOK, map[string]string{"version": buildversion.String()})
}

// Module registers myApp.version.
func Module() manifest.Module {
	return manifest.Module{
		Name: "myApp.version",
		Kind: manifest.KindFeature,
		Mount: func(r chi.Router) {
			r.Get("/api/version", Serve)
		},
	}
}
