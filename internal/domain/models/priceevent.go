// internal/domain/models/priceevent.go
package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItemPrice is the only item a price event watches: the last traded price.
const ItemPrice = "PRICE"

// Condition compares the last price against an event's target.
type Condition string

const (
	ConditionGreater        Condition = ">"
	ConditionGreaterOrEqual Condition = ">="
	ConditionLess           Condition = "<"
	ConditionLessOrEqual    Condition = "<="
	ConditionEqual          Condition = "=="
)

// Valid reports whether c is a known comparison.
func (c Condition) Valid() bool {
	switch c {
	case ConditionGreater, ConditionGreaterOrEqual, ConditionLess, ConditionLessOrEqual, ConditionEqual:
		return true
	}
	return false
}

// Holds reports whether last satisfies "last c target". A zero last price
// never does; it means no trade has been seen.
func (c Condition) Holds(last, target float64) bool {
	if last == 0 {
		return false
	}
	switch c {
	case ConditionGreater:
		return last > target
	case ConditionGreaterOrEqual:
		return last >= target
	case ConditionLess:
		return last < target
	case ConditionLessOrEqual:
		return last <= target
	case ConditionEqual:
		return last == target
	}
	return false
}

// PriceEvent is a one-shot alert: when the pair's price on the exchange meets
// the condition it fires once and is marked executed.
type PriceEvent struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Exchange     string             `bson:"exchange" json:"exchange"`
	Pair         string             `bson:"pair" json:"pair"`
	Item         string             `bson:"item" json:"item"`
	Condition    Condition          `bson:"condition" json:"condition"`
	Price        float64            `bson:"price" json:"price"`
	Executed     bool               `bson:"executed" json:"executed"`
	TriggerPrice float64            `bson:"trigger_price,omitempty" json:"triggerPrice,omitempty"`
	TriggeredAt  *time.Time         `bson:"triggered_at,omitempty" json:"triggeredAt,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}

// String renders the rule for logs and notification text.
func (e PriceEvent) String() string {
	return fmt.Sprintf("If the %s %s on %s is %s %g", e.Pair, e.Item, e.Exchange, e.Condition, e.Price)
}
