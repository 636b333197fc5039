package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/zap"

	"github.com/meteo-cli/weather-dashboard/internal/config"
	weatherHandlers "github.com/meteo-cli/weather-dashboard/internal/handlers/weather"
	"github.com/meteo-cli/weather-dashboard/internal/services/geo"
	loggerT "github.com/meteo-cli/weather-dashboard/internal/services/logger"
	metricsSvc "github.com/meteo-cli/weather-dashboard/internal/services/metrics"
	serviceWeather "github.com/meteo-cli/weather-dashboard/internal/services/weather"
	fLogger "github.com/meteo-cli/weather-dashboard/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

// ServiceContainer holds initialized dependencies for the HTTP server.
type ServiceContainer struct {
	WeatherService *serviceWeather.Service

	Router     *gin.Engine
	Srv        *http.Server
	fileLogger *zap.Logger
}

// App ties together config, logger, and metrics for startup/shutdown.
type App struct {
	cfg config.Config
	l   zerolog.Logger
	m   *metricsSvc.Metrics
}

// New prepares a new App with given config, zerolog logger, and metrics.
func New(cfg config.Config, logger zerolog.Logger, met *metricsSvc.Metrics) *App {
	return &App{
		cfg: cfg,
		l:   logger,
		m:   met,
	}
}

// Start initializes services, runs the HTTP server, and waits for shutdown.
func (a *App) Start(ctx context.Context) error {
	srvContainer := a.Init()

	a.l.Info().
		Str("address", a.cfg.Server.Address).
		Msg("starting weather dashboard server")

	errCh := make(chan error, 1)
	go func() {
		if err := srvContainer.Srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.l.Error().Err(err).Msg("HTTP server failed")
		return err
	case <-ctx.Done():
		a.l.Info().Msg("shutdown signal received, stopping server")
	}

	if err := a.Shutdown(srvContainer); err != nil {
		a.l.Error().Err(err).Msg("failed to shutdown application")
		return err
	}
	a.l.Info().Msg("application shutdown successfully")
	return nil
}

// Shutdown performs graceful shutdown of the HTTP server and syncs loggers.
func (a *App) Shutdown(srvContainer ServiceContainer) error {
	a.l.Info().Msg("stopping weather dashboard server…")

	defer func(logger *zap.Logger) {
		if logger == nil {
			return
		}
		if err := logger.Sync(); err != nil {
			a.l.Error().Err(err).Msg("failed to sync file logger")
		}
	}(srvContainer.fileLogger)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srvContainer.Srv.Shutdown(ctx); err != nil {
		return err
	}
	a.l.Info().Msg("HTTP server stopped")
	return nil
}

// Init sets up logging, services, and the router without starting the server.
func (a *App) Init() ServiceContainer {
	a.l.Info().Msgf("initializing weather dashboard with config: %+v", a.cfg)

	fileLogger, err := fLogger.NewFileLogger(a.cfg.HTTPLogsPath)
	if err != nil {
		a.l.Error().Err(err).Msg("failed to create file logger, outbound calls go unlogged")
		fileLogger = zap.NewNop()
	}

	// Provider HTTP client with outbound request logging
	roundTripper := loggerT.NewRoundTripper(fileLogger)
	httpLogClient := &http.Client{
		Transport: roundTripper,
		Timeout:   time.Duration(a.cfg.Provider.Timeout) * time.Second,
	}

	geoClient := geo.NewClient(a.cfg.Provider.GeocodingURL, httpLogClient, a.l)
	forecastClient := serviceWeather.NewClient(a.cfg.Provider.ForecastURL, httpLogClient, a.l)
	weatherService := serviceWeather.NewService(a.l, geoClient, forecastClient)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(a.m.HTTPMiddleware())
	router.HandleMethodNotAllowed = true

	handler := weatherHandlers.NewHandler(weatherService, a.cfg.DefaultCity)
	router.GET("/", handler.GetIndex)
	router.GET("/api", handler.GetIndex)
	router.GET("/weather", handler.GetWeather)
	router.GET("/forecast", handler.GetForecast)
	router.GET("/ascii", handler.GetASCII)
	router.GET("/metrics", a.m.Handler())
	router.NoRoute(handler.NoRoute)
	router.NoMethod(handler.NoMethod)

	httpServer := &http.Server{
		Addr:        a.cfg.Server.Address,
		Handler:     router,
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	return ServiceContainer{
		WeatherService: weatherService,
		Router:         router,
		Srv:            httpServer,
		fileLogger:     fileLogger,
	}
}
