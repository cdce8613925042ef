package main

import (
	"fmt"
	"log/slog"

	"medi-weather/internal/config"
	"medi-weather/internal/location"
	"medi-weather/internal/providers/nws"
	"medi-weather/internal/timezone"
	"medi-weather/internal/weather"

	"github.com/gin-gonic/gin"

	_ "medi-weather/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	locationService location.Service
	weatherService  weather.Service
	cfg             *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	timezoneSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize timezone service: %w", err)
	}

	// One client so points and forecast requests share the rate limit and breaker
	nwsClient := nws.NewClient(nws.Config{
		BaseURL:            cfg.NWS.BaseURL,
		UserAgent:          cfg.NWS.UserAgent,
		Timeout:            cfg.NWS.Timeout,
		RequestsPerSecond:  cfg.NWS.RequestsPerSecond,
		Burst:              cfg.NWS.Burst,
		BreakerMaxFailures: cfg.NWS.BreakerMaxFailures,
		BreakerOpenTimeout: cfg.NWS.BreakerOpenTimeout,
	}, logger)

	locationSvc := location.NewLocationService(nwsClient, timezoneSvc, logger)
	weatherSvc := weather.NewWeatherService(cfg, nwsClient, locationSvc, logger)

	app := newApp(cfg, logger, locationSvc, weatherSvc)
	logger.Info("application initialized",
		"units", cfg.Units(),
		"forecast_hours", cfg.App.ForecastHours,
	)

	return app, nil
}

func newApp(cfg *config.Config, logger *slog.Logger, locationSvc location.Service, weatherSvc weather.Service) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	app := &App{
		router:          router,
		logger:          logger,
		locationService: locationSvc,
		weatherService:  weatherSvc,
		cfg:             cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
