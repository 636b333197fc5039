package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/meteo-cli/weather-dashboard/internal/models"
)

const rule = "================================================================================"

// Banner returns the application banner box.
func Banner() string {
	return `
╔══════════════════════════════════════════════════════════════════════════════╗
║                              WEATHER DASHBOARD                               ║
║                      Advanced Command Line Weather Service                   ║
║                            Powered by Open-Meteo API                         ║
╚══════════════════════════════════════════════════════════════════════════════╝
`
}

func locationLabel(loc models.Location) string {
	if loc.Country == "" {
		return loc.Name
	}
	return loc.Name + ", " + loc.Country
}

// IsNightHour reports whether the clear-sky art should switch to stars.
func IsNightHour(hour int) bool {
	return hour < 6 || hour > 20
}

// Dashboard renders the current-weather report. now selects day or night art.
func Dashboard(report models.CurrentReport, now time.Time) string {
	var out strings.Builder

	out.WriteString(rule + "\n")
	fmt.Fprintf(&out, "WEATHER DASHBOARD - %s\n", strings.ToUpper(locationLabel(report.Location)))
	out.WriteString(rule + "\n")

	out.WriteString(Art(report.Weather.Condition, IsNightHour(now.Hour())))
	out.WriteString("\n")

	cur := report.Current
	fmt.Fprintf(&out, "TEMPERATURE: %g°C (feels like %g°C)\n", cur.Temperature, cur.FeelsLike)
	fmt.Fprintf(&out, "CONDITION: %s\n", report.Weather.Description)
	fmt.Fprintf(&out, "HUMIDITY: %d%%\n", cur.Humidity)
	fmt.Fprintf(&out, "PRESSURE: %g hPa\n", cur.Pressure)
	fmt.Fprintf(&out, "WIND: %g m/s\n", cur.WindSpeed)
	if cur.Precipitation > 0 {
		fmt.Fprintf(&out, "PRECIPITATION: %g mm\n", cur.Precipitation)
	}

	out.WriteString("\nTemperature Scale:\n")
	out.WriteString(TempBar(cur.Temperature))
	out.WriteString("\n" + rule + "\n")

	return out.String()
}

func parseDate(date string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Forecast renders the multi-day forecast table and trend graphs.
func Forecast(report models.ForecastReport) string {
	var out strings.Builder

	fmt.Fprintf(&out, "\n%d-DAY FORECAST - %s\n",
		len(report.Days), strings.ToUpper(locationLabel(report.Location)))
	out.WriteString(rule + "\n")

	tempsMax := make([]float64, 0, len(report.Days))
	tempsMin := make([]float64, 0, len(report.Days))
	precipitation := make([]float64, 0, len(report.Days))
	windSpeeds := make([]float64, 0, len(report.Days))
	labels := make([]string, 0, len(report.Days))

	for _, day := range report.Days {
		dayLabel := day.Date
		monthDay := day.Date
		if t, ok := parseDate(day.Date); ok {
			dayLabel = t.Format("Mon 01/02")
			monthDay = t.Format("01/02")
		}

		tempsMax = append(tempsMax, day.TempMax)
		tempsMin = append(tempsMin, day.TempMin)
		precipitation = append(precipitation, day.Precipitation)
		windSpeeds = append(windSpeeds, day.WindSpeed)
		labels = append(labels, monthDay)

		fmt.Fprintf(&out, "%9s | %8s | %5.1f°C | %5.1f°C | %s\n",
			dayLabel, MiniIcon(day.Weather.Condition), day.TempMax, day.TempMin,
			day.Weather.Description)
	}

	if len(tempsMax) >= 2 {
		out.WriteString(LineGraph(tempsMax, labels, "Max Temperature Trend", "°C"))
		out.WriteString("\n")
		out.WriteString(LineGraph(tempsMin, labels, "Min Temperature Trend", "°C"))
		out.WriteString("\n")

		if anyPositive(precipitation) {
			out.WriteString(LineGraph(precipitation, labels, "Precipitation Trend", "mm"))
			out.WriteString("\n")
		}
		if anyPositive(windSpeeds) {
			out.WriteString(LineGraph(windSpeeds, labels, "Wind Speed Trend", "m/s"))
			out.WriteString("\n")
		}
	}

	out.WriteString(rule + "\n")
	return out.String()
}

func anyPositive(values []float64) bool {
	for _, v := range values {
		if v > 0 {
			return true
		}
	}
	return false
}
