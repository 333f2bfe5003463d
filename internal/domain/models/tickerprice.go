// internal/domain/models/tickerprice.go
package models

import "time"

// TickerPrice is the latest market snapshot for one pair on one exchange.
type TickerPrice struct {
	Exchange  string    `json:"exchange" validate:"required"`
	Pair      string    `json:"pair" validate:"required,alphanum"`
	Last      float64   `json:"last" validate:"gte=0"`
	High      float64   `json:"high" validate:"gte=0"`
	Low       float64   `json:"low" validate:"gte=0"`
	Bid       float64   `json:"bid" validate:"gte=0"`
	Ask       float64   `json:"ask" validate:"gte=0"`
	Volume    float64   `json:"volume" validate:"gte=0"`
	UpdatedAt time.Time `json:"updatedAt"`
}
