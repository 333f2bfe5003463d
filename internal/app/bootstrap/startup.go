// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	settingsstore "github.com/dalemusser/tradedesk/internal/app/store/settings"
	"github.com/dalemusser/tradedesk/internal/app/system/timeouts"
	"github.com/dalemusser/tradedesk/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// It starts the ticker hub loop and seeds dashboard settings from site_name
// when none have been saved yet.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.TickerHub != nil {
		go deps.TickerHub.Run()
	}

	if deps.MongoDatabase == nil {
		return nil
	}
	return seedSettings(ctx, settingsstore.New(deps.MongoDatabase), appCfg.SiteName, logger)
}

// seedSettings saves the default settings under siteName if nothing is
// stored yet. Existing settings are never touched.
func seedSettings(ctx context.Context, store *settingsstore.Store, siteName string, logger *zap.Logger) error {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Short(), logger, "seed settings")
	defer cancel()

	exists, err := store.Exists(ctx)
	if err != nil {
		return fmt.Errorf("check settings: %w", err)
	}
	if exists {
		return nil
	}

	s := models.DefaultDashboardSettings()
	if siteName != "" {
		s.SiteName = siteName
	}
	if _, err := store.Save(ctx, s); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	logger.Info("seeded dashboard settings", zap.String("site_name", s.SiteName))
	return nil
}
