package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/meteo-cli/weather-dashboard/internal/app"
	"github.com/meteo-cli/weather-dashboard/internal/config"
	metricsSvc "github.com/meteo-cli/weather-dashboard/internal/services/metrics"
	"github.com/meteo-cli/weather-dashboard/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(cfg.LogsPath, "weather-dashboard")
	if err != nil {
		log.Panicf("failed to create logger: %v", err)
	}

	met := metricsSvc.NewMetrics("weather_dashboard")

	application := app.New(*cfg, l, met)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Start(ctx); err != nil {
		log.Panicf("Application failed to run: %v", err)
	}
}
