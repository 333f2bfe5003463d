package ticker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/tradedesk/internal/app/manifest"
	"github.com/dalemusser/tradedesk/internal/app/system/exchangeset"
	"github.com/dalemusser/tradedesk/internal/app/system/jsonapi"
	"github.com/dalemusser/tradedesk/internal/app/system/timeouts"
	"github.com/dalemusser/tradedesk/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const heartbeatInterval = 20 * time.Second

// AlertChecker returns the price events an incoming price triggered.
type AlertChecker interface {
	Check(ctx context.Context, p models.TickerPrice) ([]models.PriceEvent, error)
}

// Handler serves the ticker endpoints.
type Handler struct {
	Hub       *Hub
	Board     *Board
	Exchanges exchangeset.Set
	Alerts    AlertChecker // optional
	Log       *zap.Logger

	now func() time.Time
}

// NewHandler constructs a ticker Handler. alerts may be nil.
func NewHandler(hub *Hub, board *Board, exchanges exchangeset.Set, alerts AlertChecker, logger *zap.Logger) *Handler {
	return &Handler{Hub: hub, Board: board, Exchanges: exchanges, Alerts: alerts, Log: logger, now: time.Now}
}

// Ingest handles POST /api/ticker.
func (h *Handler) Ingest(w http.ResponseWriter, r *http.Request) {
	var p models.TickerPrice
	if !jsonapi.DecodeAndValidate(w, r, &p) {
		return
	}
	name, ok := h.Exchanges.Canonical(p.Exchange)
	if !ok {
		jsonapi.WriteError(w, http.StatusUnprocessableEntity, "exchange is not enabled")
		return
	}
	p.Exchange = name
	p.Pair = strings.ToUpper(p.Pair)
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = h.now().UTC()
	}

	h.Board.Set(p)
	h.Hub.Publish(PriceUpdate(p))
	h.raiseAlerts(r.Context(), p)
	jsonapi.WriteJSON(w, http.StatusAccepted, p)
}

// raiseAlerts publishes an alert for each event p triggers. A failing check
// is logged and does not fail the ingest.
func (h *Handler) raiseAlerts(parent context.Context, p models.TickerPrice) {
	if h.Alerts == nil {
		return
	}
	ctx, cancel := timeouts.WithTimeout(parent, timeouts.Short(), h.Log, "check price events")
	defer cancel()

	fired, err := h.Alerts.Check(ctx, p)
	if err != nil {
		h.Log.Warn("price event check failed", zap.Error(err),
			zap.String("exchange", p.Exchange), zap.String("pair", p.Pair))
	}
	for _, e := range fired {
		h.Hub.Publish(AlertUpdate(e))
	}
}

// All handles GET /api/ticker.
func (h *Handler) All(w http.ResponseWriter, r *http.Request) {
	jsonapi.WriteJSON(w, http.StatusOK, map[string]any{"data": h.Board.Latest(h.Exchanges.Names())})
}

// One handles GET /api/ticker/{exchange}/{pair}.
func (h *Handler) One(w http.ResponseWriter, r *http.Request) {
	name, ok := h.Exchanges.Canonical(chi.URLParam(r, "exchange"))
	if !ok {
		jsonapi.WriteError(w, http.StatusNotFound, "exchange is not enabled")
		return
	}
	p, ok := h.Board.Get(name, strings.ToUpper(chi.URLParam(r, "pair")))
	if !ok {
		jsonapi.WriteError(w, http.StatusNotFound, "no price for pair")
		return
	}
	jsonapi.WriteJSON(w, http.StatusOK, p)
}

// Stream handles GET /api/ticker/stream as server-sent events. The current
// board is sent first, then every update.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		jsonapi.WriteError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	sub := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(sub)

	fmt.Fprintf(w, ": connected %s\n\n", sub.ID)
	for _, ex := range h.Board.Latest(h.Exchanges.Names()) {
		for _, p := range ex.ExchangeValues {
			writeUpdate(w, PriceUpdate(p))
		}
	}
	flusher.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	ctx := r.Context()
	for {
		select {
		case u, ok := <-sub.Updates():
			if !ok {
				return
			}
			writeUpdate(w, u)
			flusher.Flush()
		case <-heartbeat.C:
			fmt.Fprint(w, ":\n\n")
			flusher.Flush()
		case <-ctx.Done():
			return
		case <-sub.Done():
			return
		}
	}
}

func writeUpdate(w http.ResponseWriter, u Update) {
	data, err := json.Marshal(u.Data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", u.Event, data)
}

// Routes returns the subrouter mounted under /api/ticker.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.All)
	r.Post("/", h.Ingest)
	r.Get("/stream", h.Stream)
	r.Get("/{exchange}/{pair}", h.One)
	return r
}

// Module registers myApp.webSocket, the live price feed.
func Module(h *Handler) manifest.Module {
	return manifest.Module{
		Name: "myApp.webSocket",
		Kind: manifest.KindFeature,
		Mount: func(r chi.Router) {
			r.Mount("/api/ticker", Routes(h))
		},
	}
}
