// internal/app/features/errors/errors.go
package errors

import (
	"net/http"
	"strings"

	"github.com/dalemusser/tradedesk/internal/app/manifest"
	"github.com/dalemusser/tradedesk/internal/app/system/jsonapi"
	"go.uber.org/zap"
)

// Handler is the errors feature handler.
// It owns the router's fallbacks; it reads the applied route table from the
// host on every request so it can be built before Configure runs.
type Handler struct {
	Host *manifest.Host
	Log  *zap.Logger
}

// NewHandler constructs an errors Handler.
func NewHandler(host *manifest.Host, logger *zap.Logger) *Handler {
	return &Handler{Host: host, Log: logger}
}

// NotFound handles every request no route matched.
//
// Browser navigations (GET/HEAD outside /api) are redirected with 302:
// a declared client view goes to its hash address under the app root,
// anything else goes to the configured fallback route. Everything else
// gets a JSON 404.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	if isAPI(r.URL.Path) || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		jsonapi.WriteError(w, http.StatusNotFound, "not found")
		return
	}

	routes := h.Host.Routes()
	target := routes.Resolve(r.URL.Path)
	if target == "" {
		target = manifest.DefaultOtherwise
	}
	h.Log.Debug("fallback redirect",
		zap.String("path", r.URL.Path),
		zap.Bool("view", routes.Has(r.URL.Path)),
		zap.String("to", target))

	w.Header().Set("Location", target)
	w.WriteHeader(http.StatusFound)
}

// MethodNotAllowed answers a known path hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	jsonapi.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func isAPI(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}
