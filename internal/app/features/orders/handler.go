package orders

import (
	"errors"
	"net/http"
	"strings"

	orderstore "github.com/dalemusser/tradedesk/internal/app/store/orders"
	"github.com/dalemusser/tradedesk/internal/app/system/exchangeset"
	"github.com/dalemusser/tradedesk/internal/app/system/jsonapi"
	"github.com/dalemusser/tradedesk/internal/app/system/timeouts"
	"github.com/dalemusser/tradedesk/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler serves order placement, listing and cancellation for both sides.
type Handler struct {
	Store     *orderstore.Store
	Exchanges exchangeset.Set
	Log       *zap.Logger
}

// NewHandler constructs an orders Handler.
func NewHandler(store *orderstore.Store, exchanges exchangeset.Set, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Exchanges: exchanges, Log: logger}
}

type placeRequest struct {
	Exchange  string  `json:"exchange" validate:"required"`
	Pair      string  `json:"pair" validate:"required,alphanum,min=6,max=12"`
	Price     float64 `json:"price" validate:"gt=0"`
	Amount    float64 `json:"amount" validate:"gt=0"`
	ClientRef string  `json:"clientRef" validate:"omitempty,uuid"`
}

// Place returns the handler for POST /api/orders/{side}.
func (h *Handler) Place(side models.OrderSide) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req placeRequest
		if !jsonapi.DecodeAndValidate(w, r, &req) {
			return
		}
		exchange, ok := h.Exchanges.Canonical(req.Exchange)
		if !ok {
			jsonapi.WriteError(w, http.StatusUnprocessableEntity, "exchange is not enabled")
			return
		}
		ref := req.ClientRef
		if ref == "" {
			ref = uuid.NewString()
		}

		ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "place order")
		defer cancel()

		o, err := h.Store.Create(ctx, models.Order{
			Exchange:  exchange,
			Pair:      strings.ToUpper(req.Pair),
			Side:      side,
			Price:     req.Price,
			Amount:    req.Amount,
			ClientRef: ref,
		})
		if err != nil {
			h.Log.Error("place order failed", zap.Error(err), zap.String("side", string(side)))
			jsonapi.WriteError(w, http.StatusInternalServerError, "could not place order")
			return
		}
		h.Log.Info("order placed",
			zap.String("id", o.ID.Hex()),
			zap.String("side", string(side)),
			zap.String("exchange", o.Exchange),
			zap.String("pair", o.Pair),
		)
		jsonapi.WriteJSON(w, http.StatusCreated, o)
	}
}

// List returns the handler for GET /api/orders/{side}.
// Optional query parameters: exchange, pair.
func (h *Handler) List(side models.OrderSide) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := orderstore.Filter{
			Side: side,
			Pair: strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("pair"))),
		}
		if ex := r.URL.Query().Get("exchange"); ex != "" {
			name, ok := h.Exchanges.Canonical(ex)
			if !ok {
				jsonapi.WriteJSON(w, http.StatusOK, map[string]any{"data": []models.Order{}})
				return
			}
			f.Exchange = name
		}

		ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list open orders")
		defer cancel()

		list, err := h.Store.ListOpen(ctx, f)
		if err != nil {
			h.Log.Error("list orders failed", zap.Error(err), zap.String("side", string(side)))
			jsonapi.WriteError(w, http.StatusInternalServerError, "could not load orders")
			return
		}
		jsonapi.WriteJSON(w, http.StatusOK, map[string]any{"data": list})
	}
}

// Cancel returns the handler for POST /api/orders/{side}/{id}/cancel.
// An id belonging to the other side is reported as not found.
func (h *Handler) Cancel(side models.OrderSide) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
		if err != nil {
			jsonapi.WriteError(w, http.StatusBadRequest, "invalid id")
			return
		}

		ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "cancel order")
		defer cancel()

		existing, err := h.Store.Get(ctx, id)
		if err == nil && existing.Side != side {
			err = orderstore.ErrNotFound
		}
		if err == nil {
			existing, err = h.Store.Cancel(ctx, id)
		}

		switch {
		case errors.Is(err, orderstore.ErrNotFound):
			jsonapi.WriteError(w, http.StatusNotFound, "order not found")
		case errors.Is(err, orderstore.ErrNotOpen):
			jsonapi.WriteError(w, http.StatusConflict, "order is not open")
		case err != nil:
			h.Log.Error("cancel order failed", zap.Error(err), zap.String("id", id.Hex()))
			jsonapi.WriteError(w, http.StatusInternalServerError, "could not cancel order")
		default:
			jsonapi.WriteJSON(w, http.StatusOK, existing)
		}
	}
}
