package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/meteo-cli/weather-dashboard/internal/models"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var currentFields = []string{
	"temperature_2m",
	"relative_humidity_2m",
	"apparent_temperature",
	"precipitation",
	"weather_code",
	"surface_pressure",
	"wind_speed_10m",
	"wind_direction_10m",
}

var dailyFields = []string{
	"temperature_2m_max",
	"temperature_2m_min",
	"weather_code",
	"precipitation_sum",
	"wind_speed_10m_max",
	"wind_direction_10m_dominant",
}

type currentResponse struct {
	Current *struct {
		Time          string  `json:"time"`
		Temperature   float64 `json:"temperature_2m"`
		Humidity      int     `json:"relative_humidity_2m"`
		FeelsLike     float64 `json:"apparent_temperature"`
		Precipitation float64 `json:"precipitation"`
		WeatherCode   int     `json:"weather_code"`
		Pressure      float64 `json:"surface_pressure"`
		WindSpeed     float64 `json:"wind_speed_10m"`
		WindDirection int     `json:"wind_direction_10m"`
	} `json:"current"`
}

type dailyResponse struct {
	Daily *struct {
		Time          []string  `json:"time"`
		TempMax       []float64 `json:"temperature_2m_max"`
		TempMin       []float64 `json:"temperature_2m_min"`
		WeatherCode   []int     `json:"weather_code"`
		Precipitation []float64 `json:"precipitation_sum"`
		WindSpeed     []float64 `json:"wind_speed_10m_max"`
		WindDirection []int     `json:"wind_direction_10m_dominant"`
	} `json:"daily"`
}

// Client fetches readings from the Open-Meteo forecast API.
type Client struct {
	apiURL string
	client HTTPClient
	logger zerolog.Logger
}

// NewClient constructs a new forecast API client.
func NewClient(apiURL string, httpClient HTTPClient, logger zerolog.Logger) *Client {
	return &Client{apiURL: apiURL, client: httpClient, logger: logger}
}

func (c *Client) get(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("url", reqURL).
			Msg("failed to create HTTP request")
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("url", reqURL).
			Msg("error sending HTTP request to forecast API")
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Error().
				Err(cerr).
				Msg("failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error().
			Str("status", resp.Status).
			Str("url", reqURL).
			Msg("forecast API returned non-200 status")
		return fmt.Errorf("forecast API error: status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error().
			Err(err).
			Str("url", reqURL).
			Msg("failed to decode forecast response")
		return err
	}
	return nil
}

func baseQuery(loc models.Location) url.Values {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	query.Set("timezone", "auto")
	return query
}

func joinFields(fields []string) string {
	return strings.Join(fields, ",")
}

// Current fetches the current conditions for a location.
func (c *Client) Current(ctx context.Context, loc models.Location) (models.CurrentWeather, models.Conditions, error) {
	start := time.Now()

	query := baseQuery(loc)
	query.Set("current", joinFields(currentFields))
	reqURL := c.apiURL + "?" + query.Encode()

	c.logger.Debug().
		Str("city", loc.Name).
		Str("url", reqURL).
		Msg("starting current weather request")

	var raw currentResponse
	if err := c.get(ctx, reqURL, &raw); err != nil {
		return models.CurrentWeather{}, models.Conditions{}, err
	}
	if raw.Current == nil {
		return models.CurrentWeather{}, models.Conditions{},
			fmt.Errorf("forecast API response missing current block for %s", loc.Name)
	}

	cur := models.CurrentWeather{
		Temperature:   raw.Current.Temperature,
		FeelsLike:     raw.Current.FeelsLike,
		Humidity:      raw.Current.Humidity,
		Pressure:      raw.Current.Pressure,
		WindSpeed:     raw.Current.WindSpeed,
		WindDirection: raw.Current.WindDirection,
		Precipitation: raw.Current.Precipitation,
		Time:          raw.Current.Time,
	}

	c.logger.Info().
		Str("city", loc.Name).
		Dur("duration_ms", time.Since(start)).
		Msg("successfully fetched current weather")

	return cur, DecodeWMO(raw.Current.WeatherCode), nil
}

// Forecast fetches up to days of daily forecast for a location.
func (c *Client) Forecast(ctx context.Context, loc models.Location, days int) ([]models.ForecastDay, error) {
	start := time.Now()

	query := baseQuery(loc)
	query.Set("daily", joinFields(dailyFields))
	query.Set("forecast_days", strconv.Itoa(days))
	reqURL := c.apiURL + "?" + query.Encode()

	c.logger.Debug().
		Str("city", loc.Name).
		Int("days", days).
		Str("url", reqURL).
		Msg("starting forecast request")

	var raw dailyResponse
	if err := c.get(ctx, reqURL, &raw); err != nil {
		return nil, err
	}
	if raw.Daily == nil {
		return nil, fmt.Errorf("forecast API response missing daily block for %s", loc.Name)
	}

	daily := raw.Daily
	count := days
	if len(daily.Time) < count {
		count = len(daily.Time)
	}

	result := make([]models.ForecastDay, 0, count)
	for i := 0; i < count; i++ {
		day := models.ForecastDay{
			Date:    daily.Time[i],
			Weather: DecodeWMO(0),
		}
		if i < len(daily.WeatherCode) {
			day.Weather = DecodeWMO(daily.WeatherCode[i])
		}
		if i < len(daily.TempMax) {
			day.TempMax = daily.TempMax[i]
		}
		if i < len(daily.TempMin) {
			day.TempMin = daily.TempMin[i]
		}
		if i < len(daily.Precipitation) {
			day.Precipitation = daily.Precipitation[i]
		}
		if i < len(daily.WindSpeed) {
			day.WindSpeed = daily.WindSpeed[i]
		}
		if i < len(daily.WindDirection) {
			day.WindDirection = daily.WindDirection[i]
		}
		result = append(result, day)
	}

	c.logger.Info().
		Str("city", loc.Name).
		Int("days", len(result)).
		Dur("duration_ms", time.Since(start)).
		Msg("successfully fetched forecast")

	return result, nil
}
