package home

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/dalemusser/tradedesk/internal/app/features/home/views"
	"github.com/dalemusser/tradedesk/internal/app/manifest"
	"github.com/dalemusser/tradedesk/internal/app/system/jsonapi"
	"go.uber.org/zap"
)

// Handler serves the SPA shell and its bootstrap descriptor.
type Handler struct {
	Host    *manifest.Host
	Web     fs.FS  // may be nil; the bare shell is used then
	BaseURL string // public address reported to the client
	Log     *zap.Logger
	index   []byte
}

// NewHandler loads index.html from web once. A missing file falls back to
// the built-in shell; any other read error is returned. With no web at all
// the bare shell, which loads no assets, is served.
func NewHandler(host *manifest.Host, web fs.FS, baseURL string, logger *zap.Logger) (*Handler, error) {
	h := &Handler{Host: host, Web: web, BaseURL: baseURL, Log: logger, index: views.Shell}
	if web == nil {
		h.index = views.BareShell
		return h, nil
	}
	b, err := fs.ReadFile(web, "index.html")
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("web root has no index.html; serving built-in shell")
	case err != nil:
		return nil, err
	default:
		h.index = b
	}
	return h, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – SPA shell                                                            |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(h.index)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /app/bootstrap.json – applied descriptor                                 |
*─────────────────────────────────────────────────────────────────────────────*/

type bootstrapResponse struct {
	manifest.Snapshot
	BaseURL string `json:"baseUrl,omitempty"`
}

func (h *Handler) ServeBootstrap(w http.ResponseWriter, r *http.Request) {
	if !h.Host.Configured() {
		jsonapi.WriteError(w, http.StatusServiceUnavailable, "application not configured")
		return
	}
	jsonapi.WriteJSON(w, http.StatusOK, bootstrapResponse{Snapshot: h.Host.Snapshot(), BaseURL: h.BaseURL})
}
