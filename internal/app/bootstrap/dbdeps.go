// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/tradedesk/internal/app/features/ticker"
	"github.com/dalemusser/tradedesk/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// TickerHub fans ingested prices out to stream subscribers. It is
	// started in Startup and stopped in Shutdown.
	TickerHub *ticker.Hub
	// TickerBoard holds the latest price per exchange and pair.
	TickerBoard *ticker.Board

	// WriteLimiter throttles API writes per client IP. Nil when disabled.
	WriteLimiter *ratelimit.Limiter
}
