package wallets

import (
	"errors"
	"net/http"
	"strings"

	walletstore "github.com/dalemusser/tradedesk/internal/app/store/wallets"
	"github.com/dalemusser/tradedesk/internal/app/system/jsonapi"
	"github.com/dalemusser/tradedesk/internal/app/system/timeouts"
	"github.com/dalemusser/tradedesk/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler serves the portfolio address endpoints.
type Handler struct {
	Store *walletstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a wallets Handler.
func NewHandler(store *walletstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

type upsertRequest struct {
	Address     string  `json:"address" validate:"required,max=128"`
	CoinType    string  `json:"coinType" validate:"required,alphanum,max=12"`
	Balance     float64 `json:"balance" validate:"gte=0"`
	Description string  `json:"description" validate:"omitempty,oneof=Personal Exchange"`
}

// List handles GET /api/wallets.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list wallets")
	defer cancel()

	addrs, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list wallets failed", zap.Error(err))
		jsonapi.WriteError(w, http.StatusInternalServerError, "could not load wallets")
		return
	}
	jsonapi.WriteJSON(w, http.StatusOK, map[string]any{"data": addrs})
}

// Summary handles GET /api/wallets/summary.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "summarize wallets")
	defer cancel()

	addrs, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list wallets failed", zap.Error(err))
		jsonapi.WriteError(w, http.StatusInternalServerError, "could not load wallets")
		return
	}
	jsonapi.WriteJSON(w, http.StatusOK, map[string]any{"data": walletstore.Summarize(addrs)})
}

// Upsert handles POST /api/wallets.
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if !jsonapi.DecodeAndValidate(w, r, &req) {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "upsert wallet")
	defer cancel()

	saved, err := h.Store.Upsert(ctx, models.WalletAddress{
		Address:     strings.TrimSpace(req.Address),
		CoinType:    strings.ToUpper(req.CoinType),
		Balance:     req.Balance,
		Description: req.Description,
	})
	if err != nil {
		h.Log.Error("upsert wallet failed", zap.Error(err), zap.String("coin", req.CoinType))
		jsonapi.WriteError(w, http.StatusInternalServerError, "could not save wallet")
		return
	}
	jsonapi.WriteJSON(w, http.StatusOK, saved)
}

// Delete handles DELETE /api/wallets/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonapi.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete wallet")
	defer cancel()

	switch err := h.Store.Delete(ctx, id); {
	case errors.Is(err, walletstore.ErrNotFound):
		jsonapi.WriteError(w, http.StatusNotFound, "wallet not found")
	case err != nil:
		h.Log.Error("delete wallet failed", zap.Error(err), zap.String("id", id.Hex()))
		jsonapi.WriteError(w, http.StatusInternalServerError, "could not delete wallet")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
