package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/zap"

	"github.com/meteo-cli/weather-dashboard/internal/cli"
	"github.com/meteo-cli/weather-dashboard/internal/config"
	"github.com/meteo-cli/weather-dashboard/internal/render"
	"github.com/meteo-cli/weather-dashboard/internal/services/geo"
	loggerT "github.com/meteo-cli/weather-dashboard/internal/services/logger"
	serviceWeather "github.com/meteo-cli/weather-dashboard/internal/services/weather"
	fLogger "github.com/meteo-cli/weather-dashboard/pkg/logger"
)

const version = "Weather CLI v2.0"

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer, args []string) error {
	// The dashboard itself goes to stdout, so keep the logger on stderr and
	// quiet unless something goes wrong.
	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(zerolog.WarnLevel)

	if err := godotenv.Load(); err != nil {
		l.Debug().Err(err).Msg("no .env file found")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	opts, shouldExit, err := cli.Parse(args, cfg.DefaultCity, out)
	if err != nil || shouldExit {
		return err
	}

	if opts.Version {
		fmt.Fprintln(out, version)
		return nil
	}
	if opts.Banner {
		fmt.Fprint(out, render.Banner())
		return nil
	}

	fileLogger, err := fLogger.NewFileLogger(cfg.HTTPLogsPath)
	if err != nil {
		l.Warn().Err(err).Msg("failed to create file logger, outbound calls go unlogged")
		fileLogger = zap.NewNop()
	}
	defer func() {
		_ = fileLogger.Sync()
	}()

	httpLogClient := &http.Client{
		Transport: loggerT.NewRoundTripper(fileLogger),
		Timeout:   time.Duration(cfg.Provider.Timeout) * time.Second,
	}

	geoClient := geo.NewClient(cfg.Provider.GeocodingURL, httpLogClient, l)
	forecastClient := serviceWeather.NewClient(cfg.Provider.ForecastURL, httpLogClient, l)
	service := serviceWeather.NewService(l, geoClient, forecastClient)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if opts.Forecast {
		report, fErr := service.ForecastByCity(ctx, opts.City, opts.Days)
		if fErr != nil {
			return fErr
		}
		fmt.Fprint(out, render.Forecast(report))
		return nil
	}

	report, cErr := service.CurrentByCity(ctx, opts.City)
	if cErr != nil {
		return cErr
	}
	fmt.Fprint(out, render.Dashboard(report, time.Now()))
	return nil
}
