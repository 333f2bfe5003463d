// internal/app/store/orders/orderstore.go
package orderstore

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

var (
	// ErrNotFound is returned when no order matches.
	ErrNotFound = errors.New("order not found")
	// ErrNotOpen is returned when cancelling an order that is no longer open.
	ErrNotOpen = errors.New("order is not open")
)

// Store provides access to the orders collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new order store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("orders")}
}

// Create stores a new open order and returns it with its id.
func (s *Store) Create(ctx context.Context, o models.Order) (models.Order, error) {
	o.ID = primitive.NewObjectID()
	o.Status = models.OrderStatusOpen
	o.CreatedAt = time.Now().UTC()
	o.CancelledAt = nil
	if _, err := s.c.InsertOne(ctx, o); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

// Filter narrows ListOpen. Empty fields match everything.
type Filter struct {
	Side     models.OrderSide
	Exchange string
	Pair     string
}

func (f Filter) bson() bson.M {
	q := bson.M{"status": models.OrderStatusOpen}
	if f.Side != "" {
		q["side"] = f.Side
	}
	if f.Exchange != "" {
		q["exchange"] = f.Exchange
	}
	if f.Pair != "" {
		q["pair"] = f.Pair
	}
	return q
}

// ListOpen returns open orders matching f, newest first.
func (s *Store) ListOpen(ctx context.Context, f Filter) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.c.Find(ctx, f.bson(), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Order{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns the order with id.
func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	var o models.Order
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, ErrNotFound
	}
	return o, err
}

// Cancel marks an open order cancelled. Cancelling twice returns ErrNotOpen.
func (s *Store) Cancel(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	now := time.Now().UTC()
	filter := bson.M{"_id": id, "status": models.OrderStatusOpen}
	update := bson.M{"$set": bson.M{"status": models.OrderStatusCancelled, "cancelled_at": now}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var o models.Order
	err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		if _, getErr := s.Get(ctx, id); getErr != nil {
			return models.Order{}, getErr
		}
		return models.Order{}, ErrNotOpen
	}
	if err != nil {
		return models.Order{}, err
	}
	return o, nil
}
