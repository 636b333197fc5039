package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/meteo-cli/weather-dashboard/internal/models"
	"github.com/meteo-cli/weather-dashboard/internal/render"
	"github.com/meteo-cli/weather-dashboard/internal/services/geo"
	weatherSvc "github.com/meteo-cli/weather-dashboard/internal/services/weather"
)

const (
	timeoutDuration = 10 * time.Second

	Version = "2.0"

	minCityLen = 2
	maxCityLen = 100

	defaultForecastDays = 5

	modeCurrent  = "current"
	modeForecast = "forecast"
)

type weatherGetterService interface {
	CurrentByCity(ctx context.Context, city string) (models.CurrentReport, error)
	ForecastByCity(ctx context.Context, city string, days int) (models.ForecastReport, error)
}

type Handler struct {
	service     weatherGetterService
	defaultCity string
}

func NewHandler(svc weatherGetterService, defaultCity string) *Handler {
	return &Handler{service: svc, defaultCity: defaultCity}
}

// cityParam returns the validated city query parameter, falling back to the
// configured default when absent.
func (h *Handler) cityParam(c *gin.Context) (string, error) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		return h.defaultCity, nil
	}
	// Length limits are in characters, not bytes, so multi-byte city
	// names are measured correctly.
	runes := utf8.RuneCountInString(city)
	if runes < minCityLen {
		return "", fmt.Errorf("city name must be at least %d characters long", minCityLen)
	}
	if runes > maxCityLen {
		return "", fmt.Errorf("city name is too long")
	}
	return city, nil
}

func daysParam(c *gin.Context) (int, error) {
	raw := c.Query("days")
	if raw == "" {
		return defaultForecastDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < weatherSvc.MinForecastDays || days > weatherSvc.MaxForecastDays {
		return 0, fmt.Errorf("days must be a valid number between %d and %d",
			weatherSvc.MinForecastDays, weatherSvc.MaxForecastDays)
	}
	return days, nil
}

func respondFetchError(c *gin.Context, err error) {
	if errors.Is(err, geo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// GetWeather handles GET /weather?city=.
func (h *Handler) GetWeather(c *gin.Context) {
	city, err := h.cityParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	ctxWithTimeout, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	report, err := h.service.CurrentByCity(ctxWithTimeout, city)
	if err != nil {
		respondFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetForecast handles GET /forecast?city=&days=.
func (h *Handler) GetForecast(c *gin.Context) {
	city, err := h.cityParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	days, err := daysParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	ctxWithTimeout, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	report, err := h.service.ForecastByCity(ctxWithTimeout, city, days)
	if err != nil {
		respondFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetASCII handles GET /ascii?city=&mode= and returns the rendered terminal
// dashboard as a JSON payload.
func (h *Handler) GetASCII(c *gin.Context) {
	city, err := h.cityParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	mode := strings.ToLower(strings.TrimSpace(c.DefaultQuery("mode", modeCurrent)))
	if mode != modeCurrent && mode != modeForecast {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: mode must be 'current' or 'forecast'"})
		return
	}

	ctxWithTimeout, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	var ascii string
	if mode == modeForecast {
		report, fErr := h.service.ForecastByCity(ctxWithTimeout, city, defaultForecastDays)
		if fErr != nil {
			respondFetchError(c, fErr)
			return
		}
		ascii = render.Forecast(report)
	} else {
		report, cErr := h.service.CurrentByCity(ctxWithTimeout, city)
		if cErr != nil {
			respondFetchError(c, cErr)
			return
		}
		ascii = render.Dashboard(report, time.Now())
	}

	c.JSON(http.StatusOK, gin.H{
		"city":  city,
		"mode":  mode,
		"ascii": ascii,
	})
}

// GetIndex handles GET / and GET /api with the API description document.
func (h *Handler) GetIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": Version,
		"message": "Weather API is running",
		"endpoints": gin.H{
			"GET /":         "API information",
			"GET /api":      "API information",
			"GET /weather":  "Get current weather for a city",
			"GET /forecast": "Get weather forecast for a city",
			"GET /ascii":    "Get ASCII art weather display",
			"GET /metrics":  "Prometheus metrics",
		},
		"parameters": gin.H{
			"city": "City name (optional, default: " + h.defaultCity + ")",
			"days": "Number of forecast days 1-7 (optional, default: 5)",
			"mode": "ASCII display mode: 'current' or 'forecast' (optional, default: 'current')",
		},
		"examples": gin.H{
			"current_weather": "/weather?city=London",
			"forecast":        "/forecast?city=Paris&days=3",
			"ascii_display":   "/ascii?city=Tokyo&mode=current",
		},
	})
}

// NoRoute handles unknown paths with a JSON 404.
func (h *Handler) NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":               "Endpoint not found",
		"message":             "Please check the API documentation at the / endpoint",
		"available_endpoints": []string{"/", "/api", "/weather", "/forecast", "/ascii", "/metrics"},
	})
}

// NoMethod handles non-GET requests on known routes with a JSON 405.
func (h *Handler) NoMethod(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{
		"error":   "Method not allowed",
		"message": "This endpoint only supports GET requests",
	})
}
