// Package ticker keeps the latest price per exchange and pair and pushes
// updates to connected dashboards.
package ticker

import (
	"sync"
	"sync/atomic"

	"github.com/dalemusser/tradedesk/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultSubscriberBuffer = 16
	defaultBroadcastBuffer  = 64
)

// SSE event names carried by an Update.
const (
	EventTicker = "ticker"
	EventAlert  = "alert"
)

// Update is one message on the stream: Event names it, Data is sent as JSON.
type Update struct {
	Event string
	Data  any
}

// PriceUpdate wraps a ticker price.
func PriceUpdate(p models.TickerPrice) Update { return Update{Event: EventTicker, Data: p} }

// AlertUpdate wraps a triggered price event.
func AlertUpdate(e models.PriceEvent) Update { return Update{Event: EventAlert, Data: e} }

// Subscriber is one connected stream.
type Subscriber struct {
	ID      string
	updates chan Update
	done    chan struct{}
}

// Updates delivers messages. It is closed on unsubscribe or hub stop.
func (s *Subscriber) Updates() <-chan Update { return s.updates }

// Done is closed when the subscriber is removed.
func (s *Subscriber) Done() <-chan struct{} { return s.done }

// Hub fans price updates out to subscribers. One goroutine (Run) owns the
// subscriber set; everything else talks to it over channels.
type Hub struct {
	register   chan *Subscriber
	unregister chan *Subscriber
	broadcast  chan Update
	stop       chan struct{}
	stopped    chan struct{}
	stopOnce   sync.Once
	claimed    atomic.Bool // set by whichever of Run or Stop owns closing stopped

	subscriberBuffer int
	log              *zap.Logger
}

// NewHub creates a hub. subscriberBuffer <= 0 uses the default.
// Call Run in a goroutine before publishing.
func NewHub(subscriberBuffer int, logger *zap.Logger) *Hub {
	if subscriberBuffer <= 0 {
		subscriberBuffer = defaultSubscriberBuffer
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		register:         make(chan *Subscriber),
		unregister:       make(chan *Subscriber),
		broadcast:        make(chan Update, defaultBroadcastBuffer),
		stop:             make(chan struct{}),
		stopped:          make(chan struct{}),
		subscriberBuffer: subscriberBuffer,
		log:              logger,
	}
}

// Run is the hub loop. It returns after Stop, and at once if the hub is
// already running or was stopped before it started.
func (h *Hub) Run() {
	if !h.claimed.CompareAndSwap(false, true) {
		return
	}
	clients := make(map[*Subscriber]struct{})
	defer close(h.stopped)

	for {
		select {
		case sub := <-h.register:
			clients[sub] = struct{}{}
			h.log.Debug("ticker subscriber registered", zap.String("subscriber", sub.ID), zap.Int("count", len(clients)))

		case sub := <-h.unregister:
			if _, ok := clients[sub]; ok {
				delete(clients, sub)
				close(sub.done)
				close(sub.updates)
				h.log.Debug("ticker subscriber unregistered", zap.String("subscriber", sub.ID), zap.Int("count", len(clients)))
			}

		case u := <-h.broadcast:
			for sub := range clients {
				select {
				case sub.updates <- u:
				default:
					h.log.Warn("ticker subscriber full, update dropped",
						zap.String("subscriber", sub.ID),
						zap.String("event", u.Event),
					)
				}
			}

		case <-h.stop:
			for sub := range clients {
				close(sub.done)
				close(sub.updates)
			}
			return
		}
	}
}

// Stop ends Run and waits for it. Safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
		if h.claimed.CompareAndSwap(false, true) {
			close(h.stopped)
		}
	})
	<-h.stopped
}

// Subscribe registers a new subscriber. The caller must Unsubscribe.
// On a stopped hub the returned subscriber is already closed.
func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{
		ID:      uuid.NewString(),
		updates: make(chan Update, h.subscriberBuffer),
		done:    make(chan struct{}),
	}
	select {
	case h.register <- sub:
	case <-h.stopped:
		close(sub.done)
		close(sub.updates)
	}
	return sub
}

// Unsubscribe removes sub.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	if sub == nil {
		return
	}
	select {
	case h.unregister <- sub:
	case <-h.stopped:
	}
}

// Publish queues u for every subscriber. It never blocks; when the queue is
// full the update is dropped.
func (h *Hub) Publish(u Update) {
	select {
	case h.broadcast <- u:
	case <-h.stopped:
	default:
		h.log.Warn("ticker broadcast queue full, update dropped",
			zap.String("event", u.Event),
		)
	}
}
