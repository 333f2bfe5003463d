// internal/app/features/settings/handler.go
package settings

import (
	"net/http"
	"strings"

	settingsstore "github.com/dalemusser/tradedesk/internal/app/store/settings"
	"github.com/dalemusser/tradedesk/internal/app/system/htmlsanitize"
	"github.com/dalemusser/tradedesk/internal/app/system/jsonapi"
	"github.com/dalemusser/tradedesk/internal/app/system/timeouts"
	"github.com/dalemusser/tradedesk/internal/domain/models"
	"go.uber.org/zap"
)

// Handler owns the dashboard settings endpoints.
type Handler struct {
	Store *settingsstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a Handler bound to the given settings store and logger.
func NewHandler(store *settingsstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

type updateRequest struct {
	SiteName       string `json:"siteName" validate:"required,max=64"`
	FiatCurrency   string `json:"fiatCurrency" validate:"required,len=3,alpha"`
	RefreshSeconds int    `json:"refreshSeconds" validate:"gte=5,lte=3600"`
	Notice         string `json:"notice" validate:"max=4000"`
}

// ServeSettings handles GET /api/settings.
func (h *Handler) ServeSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "load settings")
	defer cancel()

	s, err := h.Store.Get(ctx)
	if err != nil {
		h.Log.Error("load settings failed", zap.Error(err))
		jsonapi.WriteError(w, http.StatusInternalServerError, "could not load settings")
		return
	}
	jsonapi.WriteJSON(w, http.StatusOK, s)
}

// HandleSettings handles PUT /api/settings.
func (h *Handler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if !jsonapi.DecodeAndValidate(w, r, &req) {
		return
	}

	siteName := htmlsanitize.StripTags(req.SiteName)
	if siteName == "" {
		jsonapi.WriteJSON(w, http.StatusBadRequest, jsonapi.ErrorResponse{
			Error:  "validation failed",
			Fields: map[string]string{"siteName": "required"},
		})
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "save settings")
	defer cancel()

	saved, err := h.Store.Save(ctx, models.DashboardSettings{
		SiteName:       siteName,
		FiatCurrency:   strings.ToUpper(req.FiatCurrency),
		RefreshSeconds: req.RefreshSeconds,
		Notice:         htmlsanitize.Sanitize(req.Notice),
	})
	if err != nil {
		h.Log.Error("save settings failed", zap.Error(err))
		jsonapi.WriteError(w, http.StatusInternalServerError, "could not save settings")
		return
	}
	h.Log.Info("dashboard settings updated", zap.String("site_name", saved.SiteName))
	jsonapi.WriteJSON(w, http.StatusOK, saved)
}
