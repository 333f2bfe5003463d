package indexes_test

import (
	"testing"

	"github.com/dalemusser/tradedesk/internal/app/system/indexes"
	"github.com/dalemusser/tradedesk/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func indexNames(t *testing.T, coll *mongo.Collection) map[string]bson.M {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	out := make(map[string]bson.M)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			out[name] = idx
		}
	}
	return out
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	expected := map[string][]string{
		"wallet_addresses":   {"uniq_wallets_address_coin"},
		"orders":             {"idx_orders_status_side_exchange_pair_created", "idx_orders_status_exchange_pair"},
		"dashboard_settings": {"uniq_settings_key"},
		"price_events":       {"idx_events_executed_exchange_pair"},
	}
	for coll, names := range expected {
		got := indexNames(t, db.Collection(coll))
		for _, name := range names {
			if _, ok := got[name]; !ok {
				t.Errorf("%s: expected index %q", coll, name)
			}
		}
	}
}

func TestEnsureAll_RenamesIndexWithSameKeys(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := db.Collection("wallet_addresses").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "address", Value: 1}, {Key: "coin_type", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("old_name"),
	})
	if err != nil {
		t.Fatalf("create old index: %v", err)
	}

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	got := indexNames(t, db.Collection("wallet_addresses"))
	if _, ok := got["old_name"]; ok {
		t.Error("old index name should have been replaced")
	}
	if _, ok := got["uniq_wallets_address_coin"]; !ok {
		t.Error("expected uniq_wallets_address_coin")
	}
}

func TestEnsureAll_ReportsDuplicates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	docs := []any{
		bson.M{"address": "1abc", "coin_type": "BTC"},
		bson.M{"address": "1abc", "coin_type": "BTC"},
	}
	if _, err := db.Collection("wallet_addresses").InsertMany(ctx, docs); err != nil {
		t.Fatalf("insert duplicates: %v", err)
	}

	err := indexes.EnsureAll(ctx, db)
	if err == nil {
		t.Fatal("expected error when duplicates block a unique index")
	}
}
