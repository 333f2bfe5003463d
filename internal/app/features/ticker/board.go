package ticker

import (
	"sort"
	"sync"

	"github.com/dalemusser/tradedesk/internal/domain/models"
)

// Board holds the latest price per exchange and pair.
type Board struct {
	mu     sync.RWMutex
	prices map[string]map[string]models.TickerPrice // exchange -> pair -> price
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{prices: make(map[string]map[string]models.TickerPrice)}
}

// Set records p, replacing any older price for the same exchange and pair.
func (b *Board) Set(p models.TickerPrice) {
	b.mu.Lock()
	defer b.mu.Unlock()
	pairs, ok := b.prices[p.Exchange]
	if !ok {
		pairs = make(map[string]models.TickerPrice)
		b.prices[p.Exchange] = pairs
	}
	pairs[p.Pair] = p
}

// Get returns the latest price for exchange and pair.
func (b *Board) Get(exchange, pair string) (models.TickerPrice, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.prices[exchange][pair]
	return p, ok
}

// ExchangePrices is the latest prices of one exchange.
type ExchangePrices struct {
	ExchangeName   string               `json:"exchangeName"`
	ExchangeValues []models.TickerPrice `json:"exchangeValues"`
}

// Latest returns prices grouped by exchange in the given exchange order,
// pairs sorted by name. Exchanges with no prices are included with an empty
// list.
func (b *Board) Latest(exchanges []string) []ExchangePrices {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]ExchangePrices, 0, len(exchanges))
	for _, ex := range exchanges {
		values := make([]models.TickerPrice, 0, len(b.prices[ex]))
		for _, p := range b.prices[ex] {
			values = append(values, p)
		}
		sort.Slice(values, func(i, j int) bool { return values[i].Pair < values[j].Pair })
		out = append(out, ExchangePrices{ExchangeName: ex, ExchangeValues: values})
	}
	return out
}
