package render

import (
	"fmt"
	"math"
	"strings"
)

const graphHeight = 10

// LineGraph draws a terminal line graph of data over labels. Needs at least
// two points; otherwise it reports insufficient data.
func LineGraph(data []float64, labels []string, title, unit string) string {
	if len(data) < 2 || len(data) != len(labels) {
		return fmt.Sprintf("\n[GRAPH] %s\nInsufficient data for graph display", title)
	}

	minVal, maxVal := data[0], data[0]
	for _, v := range data[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rangeVal := maxVal - minVal
	if rangeVal == 0 {
		rangeVal = 1
	}

	normalized := make([]float64, len(data))
	for i, v := range data {
		normalized[i] = (v - minVal) / rangeVal * (graphHeight - 1)
	}

	var out strings.Builder
	fmt.Fprintf(&out, "\n[GRAPH] %s\n", title)
	out.WriteString(strings.Repeat("=", 60))

	for row := graphHeight - 1; row >= 0; row-- {
		yValue := maxVal - float64(row)*rangeVal/(graphHeight-1)
		fmt.Fprintf(&out, "\n%6.1f%s |", yValue, unit)

		for i, norm := range normalized {
			switch {
			case math.Abs(norm-float64(row)) < 0.5:
				out.WriteString("●")
			case i > 0 && between(float64(row), normalized[i-1], norm):
				out.WriteString("─")
			default:
				out.WriteString(" ")
			}
			out.WriteString(" ")
		}
	}

	out.WriteString("\n        +")
	out.WriteString(strings.Repeat("─", len(data)*2-1))
	out.WriteString("\n         ")

	short := make([]string, len(labels))
	for i, label := range labels {
		if len(label) > 3 {
			label = label[:3]
		}
		short[i] = label
	}
	out.WriteString(strings.Join(short, "  "))

	return out.String()
}

func between(row, a, b float64) bool {
	return (a <= row && row <= b) || (b <= row && row <= a)
}
