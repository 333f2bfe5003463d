package events

import (
	"errors"
	"net/http"
	"strings"

	eventstore "github.com/dalemusser/tradedesk/internal/app/store/events"
	"github.com/dalemusser/tradedesk/internal/app/system/exchangeset"
	"github.com/dalemusser/tradedesk/internal/app/system/jsonapi"
	"github.com/dalemusser/tradedesk/internal/app/system/timeouts"
	"github.com/dalemusser/tradedesk/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler serves the price event endpoints.
type Handler struct {
	Store     *eventstore.Store
	Exchanges exchangeset.Set
	Log       *zap.Logger
}

// NewHandler constructs an events Handler.
func NewHandler(store *eventstore.Store, exchanges exchangeset.Set, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Exchanges: exchanges, Log: logger}
}

type createRequest struct {
	Exchange  string  `json:"exchange" validate:"required"`
	Pair      string  `json:"pair" validate:"required,alphanum,min=6,max=12"`
	Item      string  `json:"item" validate:"omitempty,eq=PRICE"`
	Condition string  `json:"condition" validate:"required,max=2"`
	Price     float64 `json:"price" validate:"gt=0"`
}

// Create handles POST /api/events.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if !jsonapi.DecodeAndValidate(w, r, &req) {
		return
	}
	cond := models.Condition(req.Condition)
	if !cond.Valid() {
		jsonapi.WriteJSON(w, http.StatusBadRequest, jsonapi.ErrorResponse{
			Error:  "validation failed",
			Fields: map[string]string{"condition": "oneof"},
		})
		return
	}
	exchange, ok := h.Exchanges.Canonical(req.Exchange)
	if !ok {
		jsonapi.WriteError(w, http.StatusUnprocessableEntity, "exchange is not enabled")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "create price event")
	defer cancel()

	e, err := h.Store.Create(ctx, models.PriceEvent{
		Exchange:  exchange,
		Pair:      strings.ToUpper(req.Pair),
		Item:      models.ItemPrice,
		Condition: cond,
		Price:     req.Price,
	})
	if err != nil {
		h.Log.Error("create price event failed", zap.Error(err))
		jsonapi.WriteError(w, http.StatusInternalServerError, "could not save event")
		return
	}
	h.Log.Info("price event added", zap.String("id", e.ID.Hex()), zap.Stringer("event", e))
	jsonapi.WriteJSON(w, http.StatusCreated, e)
}

// List handles GET /api/events.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list price events")
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list price events failed", zap.Error(err))
		jsonapi.WriteError(w, http.StatusInternalServerError, "could not load events")
		return
	}
	total, executed := len(list), 0
	for _, e := range list {
		if e.Executed {
			executed++
		}
	}
	jsonapi.WriteJSON(w, http.StatusOK, map[string]any{
		"data":     list,
		"total":    total,
		"executed": executed,
	})
}

// Delete handles DELETE /api/events/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonapi.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete price event")
	defer cancel()

	switch err := h.Store.Delete(ctx, id); {
	case errors.Is(err, eventstore.ErrNotFound):
		jsonapi.WriteError(w, http.StatusNotFound, "event not found")
	case err != nil:
		h.Log.Error("delete price event failed", zap.Error(err), zap.String("id", id.Hex()))
		jsonapi.WriteError(w, http.StatusInternalServerError, "could not delete event")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
