package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dalemusser/tradedesk/internal/app/features/events"
	eventstore "github.com/dalemusser/tradedesk/internal/app/store/events"
	"github.com/dalemusser/tradedesk/internal/app/system/indexes"
	"github.com/dalemusser/tradedesk/internal/domain/models"
	"github.com/dalemusser/tradedesk/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// memSource keeps events in memory.
type memSource struct {
	events  []models.PriceEvent
	markErr error
}

func (m *memSource) Pending(_ context.Context, exchange, pair string) ([]models.PriceEvent, error) {
	var out []models.PriceEvent
	for _, e := range m.events {
		if !e.Executed && e.Exchange == exchange && e.Pair == pair {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memSource) MarkExecuted(_ context.Context, id primitive.ObjectID, price float64) (models.PriceEvent, bool, error) {
	if m.markErr != nil {
		return models.PriceEvent{}, false, m.markErr
	}
	for i := range m.events {
		if m.events[i].ID == id && !m.events[i].Executed {
			m.events[i].Executed = true
			m.events[i].TriggerPrice = price
			return m.events[i], true, nil
		}
	}
	return models.PriceEvent{}, false, nil
}

func event(pair string, cond models.Condition, price float64) models.PriceEvent {
	return models.PriceEvent{
		ID: primitive.NewObjectID(), Exchange: "Kraken", Pair: pair,
		Item: models.ItemPrice, Condition: cond, Price: price,
	}
}

func TestChecker_FiresMatchingEventsOnce(t *testing.T) {
	src := &memSource{events: []models.PriceEvent{
		event("BTCUSD", models.ConditionGreater, 100),
		event("BTCUSD", models.ConditionLess, 50),
		event("LTCUSD", models.ConditionGreater, 1),
	}}
	c := events.NewChecker(src, zap.NewNop())
	ctx := context.Background()

	fired, err := c.Check(ctx, models.TickerPrice{Exchange: "Kraken", Pair: "BTCUSD", Last: 101})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(fired) != 1 || fired[0].Condition != models.ConditionGreater || fired[0].TriggerPrice != 101 {
		t.Fatalf("fired: %+v", fired)
	}

	fired, err = c.Check(ctx, models.TickerPrice{Exchange: "Kraken", Pair: "BTCUSD", Last: 102})
	if err != nil || len(fired) != 0 {
		t.Errorf("second check: fired %+v, err %v", fired, err)
	}
}

func TestChecker_ZeroPriceNeverFires(t *testing.T) {
	src := &memSource{events: []models.PriceEvent{event("BTCUSD", models.ConditionLess, 50)}}
	fired, err := events.NewChecker(src, zap.NewNop()).Check(context.Background(),
		models.TickerPrice{Exchange: "Kraken", Pair: "BTCUSD", Last: 0})
	if err != nil || len(fired) != 0 {
		t.Errorf("fired %+v, err %v", fired, err)
	}
}

func TestChecker_MarkErrorReported(t *testing.T) {
	boom := errors.New("write failed")
	src := &memSource{
		events:  []models.PriceEvent{event("BTCUSD", models.ConditionGreater, 1)},
		markErr: boom,
	}
	fired, err := events.NewChecker(src, zap.NewNop()).Check(context.Background(),
		models.TickerPrice{Exchange: "Kraken", Pair: "BTCUSD", Last: 2})
	if !errors.Is(err, boom) || len(fired) != 0 {
		t.Errorf("fired %+v, err %v", fired, err)
	}
}

func TestChecker_WithStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll: %v", err)
	}

	store := eventstore.New(db)
	e, err := store.Create(ctx, event("BTCUSD", models.ConditionLessOrEqual, 90))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	c := events.NewChecker(store, zap.NewNop())
	fired, err := c.Check(ctx, models.TickerPrice{Exchange: "Kraken", Pair: "BTCUSD", Last: 90})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(fired) != 1 || fired[0].ID != e.ID || !fired[0].Executed || fired[0].TriggeredAt == nil {
		t.Fatalf("fired: %+v", fired)
	}

	pending, err := store.Pending(ctx, "Kraken", "BTCUSD")
	if err != nil || len(pending) != 0 {
		t.Errorf("pending after fire: %+v, err %v", pending, err)
	}
}
