// internal/domain/models/order.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderSide is buy or sell.
type OrderSide string

const (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

// Valid reports whether s is a known side.
func (s OrderSide) Valid() bool {
	return s == SideBuy || s == SideSell
}

// Order statuses.
const (
	OrderStatusOpen      = "open"
	OrderStatusCancelled = "cancelled"
)

// Order is a limit order placed from the dashboard.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Exchange    string             `bson:"exchange" json:"exchange"`
	Pair        string             `bson:"pair" json:"pair"` // e.g. BTCUSD
	Side        OrderSide          `bson:"side" json:"side"`
	Price       float64            `bson:"price" json:"price"`
	Amount      float64            `bson:"amount" json:"amount"`
	Status      string             `bson:"status" json:"status"`
	ClientRef   string             `bson:"client_ref" json:"clientRef"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	CancelledAt *time.Time         `bson:"cancelled_at,omitempty" json:"cancelledAt,omitempty"`
}
