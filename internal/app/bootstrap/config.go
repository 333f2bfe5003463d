// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/dalemusser/tradedesk/internal/app/manifest"
	"github.com/dalemusser/tradedesk/internal/app/system/exchangeset"
	"github.com/dalemusser/tradedesk/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for TradeDesk.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, enabled_exchanges, etc.
//   - Environment variables: TRADEDESK_MONGO_URI, TRADEDESK_WEB_ROOT, etc.
//   - Command-line flags: --mongo_uri, --web_root, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "tradedesk", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Public base URL of the dashboard"},
	{Name: "enabled_exchanges", Default: "bittrex,poloniex", Desc: "Comma-separated exchanges orders and tickers may use"},
	{Name: "web_root", Default: "", Desc: "Directory with the built SPA (index.html and static/); blank uses the built-in shell"},
	{Name: "ticker_buffer_size", Default: 16, Desc: "Per-subscriber buffer of the ticker stream"},
	{Name: "write_rate_limit", Default: 120, Desc: "API writes allowed per client IP per minute (0 disables)"},
	{Name: "site_name", Default: models.DefaultSiteName, Desc: "Site name used when dashboard settings are first created"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges flags > env (WAFFLE_* for core,
// TRADEDESK_* for app) > config files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "TRADEDESK", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: appValues.Int("mongo_max_pool_size"),

		BaseURL:          appValues.String("base_url"),
		EnabledExchanges: exchangeset.Parse(appValues.String("enabled_exchanges")),
		WebRoot:          appValues.String("web_root"),
		TickerBufferSize: appValues.Int("ticker_buffer_size"),
		WriteRateLimit:   appValues.Int("write_rate_limit"),
		SiteName:         appValues.String("site_name"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI format and the bootstrap descriptor are checked here so a
// bad deployment fails before anything connects or listens.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoDatabase == "" {
		return errors.New("mongo_database must not be empty")
	}
	if appCfg.MongoMaxPoolSize < 0 {
		return fmt.Errorf("mongo_max_pool_size must not be negative, got %d", appCfg.MongoMaxPoolSize)
	}
	if appCfg.BaseURL != "" {
		u, err := url.Parse(appCfg.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base_url must be an absolute URL, got %q", appCfg.BaseURL)
		}
	}
	if appCfg.EnabledExchanges.Len() == 0 {
		return errors.New("enabled_exchanges must name at least one exchange")
	}
	if appCfg.TickerBufferSize <= 0 {
		return fmt.Errorf("ticker_buffer_size must be positive, got %d", appCfg.TickerBufferSize)
	}
	if appCfg.WriteRateLimit < 0 {
		return fmt.Errorf("write_rate_limit must not be negative, got %d", appCfg.WriteRateLimit)
	}
	if err := manifest.Default().Validate(); err != nil {
		logger.Error("invalid bootstrap descriptor", zap.Error(err))
		return fmt.Errorf("bootstrap descriptor: %w", err)
	}
	return nil
}
