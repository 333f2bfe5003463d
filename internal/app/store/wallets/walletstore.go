// internal/app/store/wallets/walletstore.go
package walletstore

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/dalemusser/tradedesk/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no address matches.
var ErrNotFound = errors.New("wallet address not found")

// Store provides access to the wallet_addresses collection.
// An address is unique per (address, coin_type).
type Store struct {
	c *mongo.Collection
}

// New creates a new wallet store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("wallet_addresses")}
}

// Upsert inserts the address or updates balance and description of the
// existing one, returning the stored document.
//
// Two concurrent upserts of a new address can both miss and race to insert;
// the loser gets a duplicate key error and is retried once as an update.
func (s *Store) Upsert(ctx context.Context, w models.WalletAddress) (models.WalletAddress, error) {
	out, err := s.upsert(ctx, w)
	if wafflemongo.IsDup(err) {
		out, err = s.upsert(ctx, w)
	}
	return out, err
}

func (s *Store) upsert(ctx context.Context, w models.WalletAddress) (models.WalletAddress, error) {
	now := time.Now().UTC()
	filter := bson.M{"address": w.Address, "coin_type": w.CoinType}
	update := bson.M{
		"$set": bson.M{
			"balance":     w.Balance,
			"description": w.Description,
			"updated_at":  now,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"address":    w.Address,
			"coin_type":  w.CoinType,
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var out models.WalletAddress
	if err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		return models.WalletAddress{}, err
	}
	return out, nil
}

// List returns all addresses ordered by coin then address.
func (s *Store) List(ctx context.Context) ([]models.WalletAddress, error) {
	opts := options.Find().SetSort(bson.D{{Key: "coin_type", Value: 1}, {Key: "address", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.WalletAddress{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the address with the given id.
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

// Summarize totals balances per coin, sorted by coin.
func Summarize(addrs []models.WalletAddress) []models.CoinTotal {
	byCoin := make(map[string]*models.CoinTotal)
	for _, a := range addrs {
		ct, ok := byCoin[a.CoinType]
		if !ok {
			ct = &models.CoinTotal{CoinType: a.CoinType}
			byCoin[a.CoinType] = ct
		}
		ct.Balance += a.Balance
		ct.Addresses++
	}
	out := make([]models.CoinTotal, 0, len(byCoin))
	for _, ct := range byCoin {
		out = append(out, *ct)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CoinType < out[j].CoinType })
	return out
}
