package app

import (
	"context"
	"fintrack/internal/platform/db"
	httpserver "fintrack/internal/platform/http"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/adapters/cache"
	"fintrack/internal/adapters/httpclient"
	"fintrack/internal/adapters/postgres"
	"fintrack/internal/api"
	"fintrack/internal/config"
	"fintrack/internal/currency"
	"fintrack/internal/metrics"
	"fintrack/internal/rate"
	ratehandler "fintrack/internal/rate/handler"
	"fintrack/internal/settings"
	settingshandler "fintrack/internal/settings/handler"
	"fintrack/internal/transaction"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	policy, err := rate.ParseUnsupportedPolicy(appCfg.RateCache.UnsupportedPolicy)
	if err != nil {
		logrus.WithError(err).Error("Invalid rate cache configuration")
		return err
	}

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	if err = db.Migrate(startupCtx, pool); err != nil {
		logrus.WithError(err).Error("Failed to apply migrations")
		return err
	}
	logrus.Info("✅ Migrations applied")

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	m := metrics.New(prometheus.DefaultRegisterer)

	// Rates
	rateClient := httpclient.NewExchangeRateClient(baseHTTPClient, appCfg.ExchangeRateAPI.URL, appCfg.ExchangeRateAPI.RequestsPerSecond)
	rateCache := rate.NewCache(rateClient, appCfg.RateCache.TTL(), nil, m)
	converter := rate.NewConverter(rateCache, policy, m)
	rateValidator := rate.NewValidator(currency.SupportedSet())

	scheduler := rate.NewScheduler(rateCache, time.Duration(appCfg.Scheduler.WarmIntervalSeconds)*time.Second)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	// Start scheduler tied to root context
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Settings
	settingsCache, err := cache.NewSettingsCache(appCfg.SettingsCache.MaxItems)
	if err != nil {
		logrus.WithError(err).Error("Failed to create settings cache")
		return err
	}
	defer settingsCache.Close()
	settingsService := settings.NewService(postgres.NewSettingsRepository(pool), settingsCache)

	// Handlers and router
	rateHandler := ratehandler.NewRateHandler(
		rateValidator,
		converter,
		rateCache,
		transaction.NewService(converter),
		currency.NewFormatter(appCfg.Display.Locale),
	)
	settingsHandler := settingshandler.NewSettingsHandler(settingsService)
	router := api.NewRouter(rateHandler, settingsHandler, m, promhttp.Handler())

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
