package render

import (
	"fmt"
	"strings"
)

const (
	barLength   = 50
	barMinRange = -20.0
	barMaxRange = 50.0
)

// TempBar renders the fixed -20..50°C scale with a marker at the current
// temperature. Colder fills are denser.
func TempBar(temp float64) string {
	var pos int
	switch {
	case temp < barMinRange:
		pos = 0
	case temp > barMaxRange:
		pos = barLength - 1
	default:
		pos = int((temp - barMinRange) / (barMaxRange - barMinRange) * (barLength - 1))
	}

	var bar strings.Builder
	for i := 0; i < barLength; i++ {
		switch {
		case i == pos:
			bar.WriteString("●")
		case i < pos && temp < 0:
			bar.WriteString("▓")
		case i < pos && temp < 20:
			bar.WriteString("▒")
		case i < pos:
			bar.WriteString("░")
		default:
			bar.WriteString(".")
		}
	}

	return fmt.Sprintf("%g°C [%s] %g°C\n        Current: %g°C",
		barMinRange, bar.String(), barMaxRange, temp)
}
