package models

// Location is a geocoded city as returned by the geocoding API.
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1,omitempty"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// CurrentWeather holds the current conditions for a location.
type CurrentWeather struct {
	Temperature   float64 `json:"temperature"`
	FeelsLike     float64 `json:"feels_like"`
	Humidity      int     `json:"humidity"`
	Pressure      float64 `json:"pressure"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection int     `json:"wind_direction"`
	Precipitation float64 `json:"precipitation"`
	Time          string  `json:"time"`
}

// Conditions is the decoded WMO weather code for a reading.
type Conditions struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Condition   string `json:"condition"`
}

// CurrentReport is the full current-weather payload served to clients.
type CurrentReport struct {
	Location Location       `json:"location"`
	Current  CurrentWeather `json:"current"`
	Weather  Conditions     `json:"weather"`
}

// ForecastDay is a single day of the daily forecast.
type ForecastDay struct {
	Date          string     `json:"date"`
	TempMax       float64    `json:"temp_max"`
	TempMin       float64    `json:"temp_min"`
	Weather       Conditions `json:"weather"`
	Precipitation float64    `json:"precipitation"`
	WindSpeed     float64    `json:"wind_speed"`
	WindDirection int        `json:"wind_direction"`
}

// ForecastReport is the full forecast payload served to clients.
type ForecastReport struct {
	Location Location      `json:"location"`
	Days     []ForecastDay `json:"forecast"`
}
