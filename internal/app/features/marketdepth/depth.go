// Package marketdepth builds the market-depth chart series from the open
// order book.
package marketdepth

import (
	"sort"

	"github.com/dalemusser/tradedesk/internal/domain/models"
)

// Level is one price point on the chart.
type Level struct {
	Price      float64 `json:"price"`
	Amount     float64 `json:"amount"`     // summed at this price
	Cumulative float64 `json:"cumulative"` // running total from the best price outward
	Orders     int     `json:"orders"`
}

// Chart is the bid and ask side of the depth chart.
type Chart struct {
	Exchange string  `json:"exchange"`
	Pair     string  `json:"pair"`
	Bids     []Level `json:"bids"` // best (highest) price first
	Asks     []Level `json:"asks"` // best (lowest) price first
	Spread   float64 `json:"spread,omitempty"`
}

// Build aggregates open orders by side and price. Orders that are not open
// or have no volume are ignored.
func Build(exchange, pair string, orders []models.Order) Chart {
	bids := make(map[float64]*Level)
	asks := make(map[float64]*Level)
	for _, o := range orders {
		if o.Status != models.OrderStatusOpen || o.Amount <= 0 || o.Price <= 0 {
			continue
		}
		book := bids
		if o.Side == models.SideSell {
			book = asks
		} else if o.Side != models.SideBuy {
			continue
		}
		lv, ok := book[o.Price]
		if !ok {
			lv = &Level{Price: o.Price}
			book[o.Price] = lv
		}
		lv.Amount += o.Amount
		lv.Orders++
	}

	c := Chart{
		Exchange: exchange,
		Pair:     pair,
		Bids:     accumulate(bids, func(a, b float64) bool { return a > b }),
		Asks:     accumulate(asks, func(a, b float64) bool { return a < b }),
	}
	if len(c.Bids) > 0 && len(c.Asks) > 0 {
		c.Spread = c.Asks[0].Price - c.Bids[0].Price
	}
	return c
}

func accumulate(book map[float64]*Level, better func(a, b float64) bool) []Level {
	out := make([]Level, 0, len(book))
	for _, lv := range book {
		out = append(out, *lv)
	}
	sort.Slice(out, func(i, j int) bool { return better(out[i].Price, out[j].Price) })
	var total float64
	for i := range out {
		total += out[i].Amount
		out[i].Cumulative = total
	}
	return out
}
