// internal/app/store/events/eventstore.go
package eventstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/tradedesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no event matches.
var ErrNotFound = errors.New("price event not found")

// Store provides access to the price_events collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new price event store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("price_events")}
}

// Create stores a new pending event and returns it with its id.
func (s *Store) Create(ctx context.Context, e models.PriceEvent) (models.PriceEvent, error) {
	e.ID = primitive.NewObjectID()
	e.Executed = false
	e.TriggerPrice = 0
	e.TriggeredAt = nil
	e.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.PriceEvent{}, err
	}
	return e, nil
}

// List returns every event, oldest first.
func (s *Store) List(ctx context.Context) ([]models.PriceEvent, error) {
	return s.find(ctx, bson.M{})
}

// Pending returns the events still waiting on exchange and pair.
func (s *Store) Pending(ctx context.Context, exchange, pair string) ([]models.PriceEvent, error) {
	return s.find(ctx, bson.M{"executed": false, "exchange": exchange, "pair": pair})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.PriceEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.PriceEvent{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkExecuted records that the event fired at price. It reports false when
// the event was already executed or deleted, so concurrent ingests fire an
// event at most once.
func (s *Store) MarkExecuted(ctx context.Context, id primitive.ObjectID, price float64) (models.PriceEvent, bool, error) {
	now := time.Now().UTC()
	filter := bson.M{"_id": id, "executed": false}
	update := bson.M{"$set": bson.M{"executed": true, "trigger_price": price, "triggered_at": now}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var e models.PriceEvent
	err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.PriceEvent{}, false, nil
	}
	if err != nil {
		return models.PriceEvent{}, false, err
	}
	return e, true, nil
}

// Delete removes the event with id.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
