// internal/app/bootstrap/routes.go
package bootstrap

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	errorsfeature "github.com/dalemusser/tradedesk/internal/app/features/errors"
	eventsfeature "github.com/dalemusser/tradedesk/internal/app/features/events"
	exchangesfeature "github.com/dalemusser/tradedesk/internal/app/features/exchanges"
	healthfeature "github.com/dalemusser/tradedesk/internal/app/features/health"
	homefeature "github.com/dalemusser/tradedesk/internal/app/features/home"
	marketdepthfeature "github.com/dalemusser/tradedesk/internal/app/features/marketdepth"
	ordersfeature "github.com/dalemusser/tradedesk/internal/app/features/orders"
	settingsfeature "github.com/dalemusser/tradedesk/internal/app/features/settings"
	tickerfeature "github.com/dalemusser/tradedesk/internal/app/features/ticker"
	versionfeature "github.com/dalemusser/tradedesk/internal/app/features/version"
	walletsfeature "github.com/dalemusser/tradedesk/internal/app/features/wallets"
	"github.com/dalemusser/tradedesk/internal/app/manifest"
	eventstore "github.com/dalemusser/tradedesk/internal/app/store/events"
	orderstore "github.com/dalemusser/tradedesk/internal/app/store/orders"
	settingsstore "github.com/dalemusser/tradedesk/internal/app/store/settings"
	walletstore "github.com/dalemusser/tradedesk/internal/app/store/wallets"
	"github.com/dalemusser/tradedesk/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// clientModules ship with the SPA assets and have no server routes.
// ui-notification is registered by the events feature, which raises the
// alerts it shows.
var clientModules = []manifest.Module{
	{Name: "ngRoute", Kind: manifest.KindVendor},
	{Name: "zingchart-angularjs", Kind: manifest.KindVendor},
	{Name: "myApp.stringUtils", Kind: manifest.KindClient},
}

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// It registers every module the host can load, applies the bootstrap
// descriptor to the host, then mounts the routes of the resolved modules in
// manifest order. A manifest entry with no registered module aborts startup.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	var web fs.FS
	var static http.Handler
	if appCfg.WebRoot != "" {
		web = os.DirFS(appCfg.WebRoot)
		// Static assets with pre-compressed file support (gzip/brotli)
		static = fileserver.Handler("/static", filepath.Join(appCfg.WebRoot, "static"))
	}

	reg := manifest.NewRegistry()
	host := manifest.NewHost(reg)

	homeHandler, err := homefeature.NewHandler(host, web, appCfg.BaseURL, logger)
	if err != nil {
		logger.Error("load SPA shell failed", zap.Error(err), zap.String("web_root", appCfg.WebRoot))
		return nil, err
	}

	orders := orderstore.New(deps.MongoDatabase)
	priceEvents := eventstore.New(deps.MongoDatabase)
	alerts := eventsfeature.NewChecker(priceEvents, logger)

	reg.MustRegister(clientModules...)
	reg.MustRegister(
		homefeature.Module(homeHandler, static),
		walletsfeature.Module(walletsfeature.NewHandler(walletstore.New(deps.MongoDatabase), logger)),
		settingsfeature.Module(settingsfeature.NewHandler(settingsstore.New(deps.MongoDatabase), logger)),
		versionfeature.Module(),
		exchangesfeature.Module(exchangesfeature.NewHandler(appCfg.EnabledExchanges)),
		tickerfeature.Module(tickerfeature.NewHandler(deps.TickerHub, deps.TickerBoard, appCfg.EnabledExchanges, alerts, logger)),
		eventsfeature.Module(eventsfeature.NewHandler(priceEvents, appCfg.EnabledExchanges, logger)),
		marketdepthfeature.Module(marketdepthfeature.NewHandler(orders, appCfg.EnabledExchanges, logger)),
	)
	reg.MustRegister(ordersfeature.Modules(ordersfeature.NewHandler(orders, appCfg.EnabledExchanges, logger))...)

	if err := manifest.Default().Configure(host); err != nil {
		logger.Error("bootstrap descriptor could not be applied", zap.Error(err))
		return nil, fmt.Errorf("configure host: %w", err)
	}
	logger.Info("bootstrap descriptor applied",
		zap.String("app", host.AppName()),
		zap.Strings("modules", host.ModuleNames()),
		zap.Strings("views", host.Routes().Views()))

	r := chi.NewRouter()

	// HEAD is answered by the matching GET route.
	r.Use(middleware.GetHead)

	if deps.WriteLimiter != nil {
		r.Use(ratelimit.Writes(deps.WriteLimiter, logger))
	}

	// Anything unmatched goes through the descriptor's fallback route. Set
	// before mounting so subrouters inherit it.
	errorsHandler := errorsfeature.NewHandler(host, logger)
	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, host, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	for _, m := range host.Modules() {
		if m.Mount != nil {
			m.Mount(r)
		}
	}

	return r, nil
}
