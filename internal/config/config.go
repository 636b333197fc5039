package config

import "github.com/kelseyhightower/envconfig"

type Server struct {
	Address     string `envconfig:"SERVER_ADDRESS" default:":8080"`
	ReadTimeout int    `envconfig:"SERVER_TIMEOUT" default:"10"`
}

type Provider struct {
	GeocodingURL string `envconfig:"GEOCODING_API_URL" default:"https://geocoding-api.open-meteo.com/v1/search"`
	ForecastURL  string `envconfig:"FORECAST_API_URL" default:"https://api.open-meteo.com/v1/forecast"`
	Timeout      int    `envconfig:"PROVIDER_TIMEOUT" default:"10"`
}

type Config struct {
	DefaultCity string `envconfig:"DEFAULT_CITY" default:"London"`

	Server   Server
	Provider Provider

	LogsPath     string `envconfig:"LOGS_PATH" default:""`
	HTTPLogsPath string `envconfig:"HTTP_LOGS_PATH" default:"./log/outbound-http.log"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
