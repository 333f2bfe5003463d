package events

import (
	"context"

	"github.com/dalemusser/tradedesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Source is the part of the event store the checker needs.
type Source interface {
	Pending(ctx context.Context, exchange, pair string) ([]models.PriceEvent, error)
	MarkExecuted(ctx context.Context, id primitive.ObjectID, price float64) (models.PriceEvent, bool, error)
}

// Checker fires pending price events against incoming prices.
type Checker struct {
	Source Source
	Log    *zap.Logger
}

// NewChecker constructs a Checker.
func NewChecker(src Source, logger *zap.Logger) *Checker {
	return &Checker{Source: src, Log: logger}
}

// Check returns the events that p's last price triggered. Each returned event
// is already marked executed and will not fire again. An error marking one
// event does not stop the others.
func (c *Checker) Check(ctx context.Context, p models.TickerPrice) ([]models.PriceEvent, error) {
	pending, err := c.Source.Pending(ctx, p.Exchange, p.Pair)
	if err != nil {
		return nil, err
	}

	var fired []models.PriceEvent
	var firstErr error
	for _, e := range pending {
		if !e.Condition.Holds(p.Last, e.Price) {
			continue
		}
		done, ok, err := c.Source.MarkExecuted(ctx, e.ID, p.Last)
		if err != nil {
			c.Log.Error("mark price event executed failed", zap.Error(err), zap.String("id", e.ID.Hex()))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if !ok {
			continue
		}
		c.Log.Info("price event triggered",
			zap.String("id", done.ID.Hex()),
			zap.String("exchange", done.Exchange),
			zap.Float64("last", p.Last))
		fired = append(fired, done)
	}
	return fired, firstErr
}
