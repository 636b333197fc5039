package weather

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/meteo-cli/weather-dashboard/internal/models"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	resp, ok := args.Get(0).(*http.Response)
	if !ok {
		return nil, args.Error(1)
	}
	return resp, args.Error(1)
}

var testLocation = models.Location{
	Name:      "Lviv",
	Country:   "Ukraine",
	Latitude:  49.84,
	Longitude: 24.03,
}

func TestClient_Current_Success(t *testing.T) {
	m := &mockHTTPClient{}
	m.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		q := req.URL.Query()
		return strings.Contains(q.Get("current"), "temperature_2m") &&
			q.Get("timezone") == "auto"
	})).Return(
		&http.Response{
			StatusCode: http.StatusOK,
			Body: io.NopCloser(strings.NewReader(
				`{
				  "current": {
					"time": "2025-06-01T12:00",
					"temperature_2m": 21.4,
					"relative_humidity_2m": 55,
					"apparent_temperature": 20.1,
					"precipitation": 0.2,
					"weather_code": 61,
					"surface_pressure": 1012.5,
					"wind_speed_10m": 3.4,
					"wind_direction_10m": 180
				  }
				}`)),
		}, nil).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	client := NewClient("https://api.test/v1/forecast", m, zerolog.Nop())

	current, conditions, err := client.Current(context.Background(), testLocation)
	require.NoError(t, err)
	assert.InDelta(t, 21.4, current.Temperature, 1e-9)
	assert.InDelta(t, 20.1, current.FeelsLike, 1e-9)
	assert.Equal(t, 55, current.Humidity)
	assert.InDelta(t, 1012.5, current.Pressure, 1e-9)
	assert.InDelta(t, 3.4, current.WindSpeed, 1e-9)
	assert.Equal(t, 180, current.WindDirection)
	assert.InDelta(t, 0.2, current.Precipitation, 1e-9)
	assert.Equal(t, "2025-06-01T12:00", current.Time)
	assert.Equal(t, 61, conditions.Code)
	assert.Equal(t, "Slight rain", conditions.Description)
	assert.Equal(t, "rain", conditions.Condition)
}

func TestClient_Current_MissingBlock(t *testing.T) {
	m := &mockHTTPClient{}
	m.On("Do", mock.Anything).Return(
		&http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
		}, nil).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	client := NewClient("https://api.test/v1/forecast", m, zerolog.Nop())

	_, _, err := client.Current(context.Background(), testLocation)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing current block")
}

func TestClient_Forecast_Success(t *testing.T) {
	m := &mockHTTPClient{}
	m.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		q := req.URL.Query()
		return strings.Contains(q.Get("daily"), "temperature_2m_max") &&
			q.Get("forecast_days") == "3"
	})).Return(
		&http.Response{
			StatusCode: http.StatusOK,
			Body: io.NopCloser(strings.NewReader(
				`{
				  "daily": {
					"time": ["2025-06-01", "2025-06-02", "2025-06-03"],
					"temperature_2m_max": [22.1, 24.0, 19.5],
					"temperature_2m_min": [12.3, 13.0, 11.1],
					"weather_code": [0, 3, 95],
					"precipitation_sum": [0, 0, 7.2],
					"wind_speed_10m_max": [3.1, 4.4, 9.9],
					"wind_direction_10m_dominant": [90, 120, 270]
				  }
				}`)),
		}, nil).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	client := NewClient("https://api.test/v1/forecast", m, zerolog.Nop())

	days, err := client.Forecast(context.Background(), testLocation, 3)
	require.NoError(t, err)
	require.Len(t, days, 3)

	assert.Equal(t, "2025-06-01", days[0].Date)
	assert.InDelta(t, 22.1, days[0].TempMax, 1e-9)
	assert.InDelta(t, 12.3, days[0].TempMin, 1e-9)
	assert.Equal(t, "Clear sky", days[0].Weather.Description)

	assert.Equal(t, "Thunderstorm", days[2].Weather.Description)
	assert.Equal(t, "storm", days[2].Weather.Condition)
	assert.InDelta(t, 7.2, days[2].Precipitation, 1e-9)
	assert.Equal(t, 270, days[2].WindDirection)
}

func TestClient_Forecast_TruncatesToRequestedDays(t *testing.T) {
	m := &mockHTTPClient{}
	m.On("Do", mock.Anything).Return(
		&http.Response{
			StatusCode: http.StatusOK,
			Body: io.NopCloser(strings.NewReader(
				`{
				  "daily": {
					"time": ["2025-06-01", "2025-06-02"],
					"temperature_2m_max": [22.1, 24.0],
					"temperature_2m_min": [12.3, 13.0],
					"weather_code": [0, 3],
					"precipitation_sum": [0, 0],
					"wind_speed_10m_max": [3.1, 4.4],
					"wind_direction_10m_dominant": [90, 120]
				  }
				}`)),
		}, nil).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	client := NewClient("https://api.test/v1/forecast", m, zerolog.Nop())

	// Provider returned fewer days than requested; take what it gave.
	days, err := client.Forecast(context.Background(), testLocation, 5)
	require.NoError(t, err)
	assert.Len(t, days, 2)
}

func TestClient_Forecast_ShortWeatherCodeArray(t *testing.T) {
	m := &mockHTTPClient{}
	m.On("Do", mock.Anything).Return(
		&http.Response{
			StatusCode: http.StatusOK,
			Body: io.NopCloser(strings.NewReader(
				`{
				  "daily": {
					"time": ["2025-06-01", "2025-06-02", "2025-06-03"],
					"temperature_2m_max": [22.1, 24.0, 19.5],
					"temperature_2m_min": [12.3, 13.0, 11.2],
					"weather_code": [61],
					"precipitation_sum": [4.0, 0, 0],
					"wind_speed_10m_max": [3.1, 4.4, 5.0],
					"wind_direction_10m_dominant": [90, 120, 200]
				  }
				}`)),
		}, nil).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	client := NewClient("https://api.test/v1/forecast", m, zerolog.Nop())

	// weather_code shorter than time must not panic; missing entries
	// fall back to clear sky.
	days, err := client.Forecast(context.Background(), testLocation, 3)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, "Slight rain", days[0].Weather.Description)
	assert.Equal(t, "Clear sky", days[1].Weather.Description)
	assert.Equal(t, "Clear sky", days[2].Weather.Description)
}

func TestClient_Forecast_APIError(t *testing.T) {
	m := &mockHTTPClient{}
	m.On("Do", mock.Anything).Return(
		&http.Response{
			StatusCode: http.StatusBadRequest,
			Status:     "400 Bad Request",
			Body:       io.NopCloser(strings.NewReader(`{"reason": "invalid"}`)),
		}, nil).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	client := NewClient("https://api.test/v1/forecast", m, zerolog.Nop())

	_, err := client.Forecast(context.Background(), testLocation, 3)
	require.Error(t, err)
}
