// internal/app/store/settings/settingsstore.go
package settingsstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/tradedesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// settingsKey identifies the single settings document.
const settingsKey = "dashboard"

// Store provides access to the dashboard_settings collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new settings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("dashboard_settings")}
}

// Get returns the saved settings, or the defaults when none were saved.
func (s *Store) Get(ctx context.Context) (models.DashboardSettings, error) {
	var settings models.DashboardSettings
	err := s.c.FindOne(ctx, bson.M{"key": settingsKey}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.DefaultDashboardSettings(), nil
	}
	if err != nil {
		return models.DashboardSettings{}, err
	}
	return settings, nil
}

// Save upserts the settings document and returns what was stored.
func (s *Store) Save(ctx context.Context, settings models.DashboardSettings) (models.DashboardSettings, error) {
	now := time.Now().UTC()
	settings.UpdatedAt = &now

	update := bson.M{
		"$set": bson.M{
			"key":             settingsKey,
			"site_name":       settings.SiteName,
			"fiat_currency":   settings.FiatCurrency,
			"refresh_seconds": settings.RefreshSeconds,
			"notice":          settings.Notice,
			"updated_at":      settings.UpdatedAt,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved models.DashboardSettings
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"key": settingsKey}, update, opts).Decode(&saved); err != nil {
		return models.DashboardSettings{}, err
	}
	return saved, nil
}

// Exists reports whether settings have been saved.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"key": settingsKey})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
