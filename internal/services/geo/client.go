package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/meteo-cli/weather-dashboard/internal/models"
)

// ErrNotFound is returned when the geocoding API has no match for a city.
var ErrNotFound = errors.New("city not found")

type searchResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client resolves city names to coordinates via the Open-Meteo geocoding API.
type Client struct {
	apiURL string
	client HTTPClient
	logger zerolog.Logger
}

// NewClient constructs a new geocoding client.
func NewClient(apiURL string, httpClient HTTPClient, logger zerolog.Logger) *Client {
	return &Client{apiURL: apiURL, client: httpClient, logger: logger}
}

// Locate resolves a city name to its best-matching location.
func (c *Client) Locate(ctx context.Context, city string) (models.Location, error) {
	start := time.Now()

	city = strings.TrimSpace(city)
	if city == "" {
		return models.Location{}, fmt.Errorf("city name cannot be empty")
	}

	query := url.Values{}
	query.Set("name", city)
	query.Set("count", "1")
	query.Set("language", "en")
	query.Set("format", "json")
	reqURL := c.apiURL + "?" + query.Encode()

	c.logger.Debug().
		Str("city", city).
		Str("url", reqURL).
		Msg("starting geocoding request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("city", city).
			Msg("failed to create HTTP request")
		return models.Location{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("city", city).
			Str("url", reqURL).
			Msg("error sending HTTP request to geocoding API")
		return models.Location{}, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Error().
				Err(cerr).
				Str("city", city).
				Msg("failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error().
			Str("city", city).
			Str("status", resp.Status).
			Msg("geocoding API returned non-200 status")
		return models.Location{}, fmt.Errorf("geocoding API error: status %s", resp.Status)
	}

	var raw searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		c.logger.Error().
			Err(err).
			Str("city", city).
			Msg("failed to decode geocoding response")
		return models.Location{}, err
	}

	if len(raw.Results) == 0 {
		c.logger.Info().
			Str("city", city).
			Msg("no geocoding results")
		return models.Location{}, fmt.Errorf("%w: %q", ErrNotFound, city)
	}

	match := raw.Results[0]
	loc := models.Location{
		Name:      match.Name,
		Country:   match.Country,
		Admin1:    match.Admin1,
		Latitude:  match.Latitude,
		Longitude: match.Longitude,
	}
	if loc.Country == "" {
		loc.Country = "Unknown"
	}

	c.logger.Info().
		Str("city", city).
		Str("resolved", loc.Name+", "+loc.Country).
		Dur("duration_ms", time.Since(start)).
		Msg("successfully geocoded city")

	return loc, nil
}
