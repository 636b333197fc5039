package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/meteo-cli/weather-dashboard/internal/services/weather"
)

const defaultDays = 5

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options holds the parsed command line for a single invocation.
type Options struct {
	City     string
	Forecast bool
	Days     int
	Banner   bool
	Version  bool
}

// Parse processes command-line arguments. It returns the populated Options,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, defaultCity string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("weatherdash", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
Weather Dashboard - Get weather information from the command line.

Usage:
  weatherdash [options] [CITY]

Arguments:
  CITY
    City name to get weather for (default: %s).

Options:
`, defaultCity)
		flagSet.PrintDefaults()
		fmt.Fprint(output, `
Examples:
  weatherdash London
  weatherdash --forecast Tokyo
  weatherdash --forecast --days 3 Paris
  weatherdash --banner
`)
	}

	forecastFlag := flagSet.Bool("forecast", false, "Show weather forecast instead of current weather.")
	fFlag := flagSet.Bool("f", false, "Show weather forecast (shorthand).")
	daysFlag := flagSet.Int("days", defaultDays, "Number of forecast days (1-7).")
	dFlag := flagSet.Int("d", defaultDays, "Number of forecast days (shorthand).")
	bannerFlag := flagSet.Bool("banner", false, "Show application banner.")
	bFlag := flagSet.Bool("b", false, "Show application banner (shorthand).")
	versionFlag := flagSet.Bool("version", false, "Print version and exit.")
	vFlag := flagSet.Bool("v", false, "Print version and exit (shorthand).")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	days := *daysFlag
	if days == defaultDays && *dFlag != defaultDays {
		days = *dFlag
	}
	if days < weather.MinForecastDays || days > weather.MaxForecastDays {
		return nil, false, &ExitError{
			Code: 2,
			Message: fmt.Sprintf("invalid days: must be between %d and %d",
				weather.MinForecastDays, weather.MaxForecastDays),
		}
	}

	city := defaultCity
	if flagSet.NArg() > 0 {
		city = flagSet.Arg(0)
	}

	opts := &Options{
		City:     city,
		Forecast: *forecastFlag || *fFlag,
		Days:     days,
		Banner:   *bannerFlag || *bFlag,
		Version:  *versionFlag || *vFlag,
	}
	return opts, false, nil
}
