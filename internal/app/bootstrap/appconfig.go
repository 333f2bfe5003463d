// internal/app/bootstrap/appconfig.go
package bootstrap

import "github.com/dalemusser/tradedesk/internal/app/system/exchangeset"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration; ports, TLS, logging and
// CORS stay in WAFFLE's CoreConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize int    // Maximum connections in the driver pool (0 = driver default)

	// BaseURL is the public address of the dashboard (e.g., "http://localhost:3000").
	// It is reported to the client in /app/bootstrap.json.
	BaseURL string

	// EnabledExchanges are the exchanges orders and tickers may name.
	EnabledExchanges exchangeset.Set

	// WebRoot is the directory holding the built SPA (index.html, static/).
	// Blank serves the built-in shell with no static assets.
	WebRoot string

	// TickerBufferSize is the per-subscriber buffer of the ticker stream.
	TickerBufferSize int

	// WriteRateLimit is the number of API writes allowed per client IP per
	// minute. Zero disables the limit.
	WriteRateLimit int

	// SiteName seeds the dashboard settings the first time the app starts.
	SiteName string
}
