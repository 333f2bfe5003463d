package eventstore_test

import (
	"errors"
	"testing"

	eventstore "github.com/dalemusser/tradedesk/internal/app/store/events"
	"github.com/dalemusser/tradedesk/internal/app/system/indexes"
	"github.com/dalemusser/tradedesk/internal/domain/models"
	"github.com/dalemusser/tradedesk/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_CreatePendingExecute(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll: %v", err)
	}

	e, err := store.Create(ctx, models.PriceEvent{
		Exchange: "Kraken", Pair: "BTCUSD", Item: models.ItemPrice,
		Condition: models.ConditionGreater, Price: 100,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.ID.IsZero() || e.Executed || e.CreatedAt.IsZero() {
		t.Errorf("created event: %+v", e)
	}
	if _, err := store.Create(ctx, models.PriceEvent{
		Exchange: "Kraken", Pair: "LTCUSD", Item: models.ItemPrice,
		Condition: models.ConditionLess, Price: 50,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	pending, err := store.Pending(ctx, "Kraken", "BTCUSD")
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != e.ID {
		t.Fatalf("Pending: got %+v", pending)
	}

	fired, ok, err := store.MarkExecuted(ctx, e.ID, 101)
	if err != nil || !ok {
		t.Fatalf("MarkExecuted: ok=%v err=%v", ok, err)
	}
	if !fired.Executed || fired.TriggerPrice != 101 || fired.TriggeredAt == nil {
		t.Errorf("executed event: %+v", fired)
	}

	if _, ok, err := store.MarkExecuted(ctx, e.ID, 102); err != nil || ok {
		t.Errorf("second MarkExecuted: ok=%v err=%v, want false nil", ok, err)
	}

	pending, _ = store.Pending(ctx, "Kraken", "BTCUSD")
	if len(pending) != 0 {
		t.Errorf("executed event still pending: %+v", pending)
	}

	all, err := store.List(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("List: %d events, err %v", len(all), err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := eventstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	e, err := store.Create(ctx, models.PriceEvent{Exchange: "Kraken", Pair: "BTCUSD", Item: models.ItemPrice, Condition: models.ConditionEqual, Price: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := store.Delete(ctx, e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, e.ID); !errors.Is(err, eventstore.ErrNotFound) {
		t.Errorf("second Delete: got %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, primitive.NewObjectID()); !errors.Is(err, eventstore.ErrNotFound) {
		t.Errorf("Delete unknown: got %v", err)
	}
}
