package weather

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/meteo-cli/weather-dashboard/internal/models"
)

const (
	MinForecastDays = 1
	MaxForecastDays = 7
)

type geocoder interface {
	Locate(ctx context.Context, city string) (models.Location, error)
}

type forecaster interface {
	Current(ctx context.Context, loc models.Location) (models.CurrentWeather, models.Conditions, error)
	Forecast(ctx context.Context, loc models.Location, days int) ([]models.ForecastDay, error)
}

// Service resolves a city and fetches its weather in one call.
type Service struct {
	geo    geocoder
	api    forecaster
	logger zerolog.Logger
}

func NewService(logger zerolog.Logger, geo geocoder, api forecaster) *Service {
	return &Service{geo: geo, api: api, logger: logger}
}

// CurrentByCity returns the current weather report for a city name.
func (s *Service) CurrentByCity(ctx context.Context, city string) (models.CurrentReport, error) {
	loc, err := s.geo.Locate(ctx, city)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("city", city).
			Err(err).
			Msg("geocoding failed")
		return models.CurrentReport{}, err
	}

	current, conditions, err := s.api.Current(ctx, loc)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("city", loc.Name).
			Err(err).
			Msg("current weather fetch failed")
		return models.CurrentReport{}, err
	}

	return models.CurrentReport{
		Location: loc,
		Current:  current,
		Weather:  conditions,
	}, nil
}

// ForecastByCity returns a days-long forecast report for a city name.
func (s *Service) ForecastByCity(ctx context.Context, city string, days int) (models.ForecastReport, error) {
	if days < MinForecastDays || days > MaxForecastDays {
		return models.ForecastReport{},
			fmt.Errorf("days must be between %d and %d", MinForecastDays, MaxForecastDays)
	}

	loc, err := s.geo.Locate(ctx, city)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("city", city).
			Err(err).
			Msg("geocoding failed")
		return models.ForecastReport{}, err
	}

	forecast, err := s.api.Forecast(ctx, loc, days)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("city", loc.Name).
			Int("days", days).
			Err(err).
			Msg("forecast fetch failed")
		return models.ForecastReport{}, err
	}

	return models.ForecastReport{
		Location: loc,
		Days:     forecast,
	}, nil
}
