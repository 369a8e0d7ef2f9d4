package render

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/2beens/weightstats/internal/weights"
)

const defaultChartHeight = 15

// overlay series draw on top of the weight line, in this order
var chartPalette = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Green,
	asciigraph.Gray,
	asciigraph.Gray,
	asciigraph.Red,
	asciigraph.Yellow,
	asciigraph.Magenta,
	asciigraph.Cyan,
}

type ChartOptions struct {
	// MinMax overlays two constant lines at the series extremes.
	MinMax bool
	// Targets overlays one constant reference line per level.
	Targets []float64
	// Height of the plot area in rows; 0 means the default.
	Height int
}

// Chart renders the series and its rolling daily average as a terminal
// line chart, with optional min/max and target reference lines.
func Chart(series weights.Series, averages []float64, opts ChartOptions) string {
	if len(series) == 0 {
		return ""
	}

	data := [][]float64{series.Kilos(), averages}
	legends := []string{"weight", "daily avg"}

	if opts.MinMax {
		min, max := series.MinMax()
		data = append(data, constantLine(min, len(series)), constantLine(max, len(series)))
		legends = append(legends, fmt.Sprintf("min %.1f", min), fmt.Sprintf("max %.1f", max))
	}

	for _, target := range opts.Targets {
		data = append(data, constantLine(target, len(series)))
		legends = append(legends, fmt.Sprintf("target %.1f", target))
	}

	height := opts.Height
	if height <= 0 {
		height = defaultChartHeight
	}

	colors := make([]asciigraph.AnsiColor, len(data))
	for i := range colors {
		colors[i] = chartPalette[i%len(chartPalette)]
	}

	caption := fmt.Sprintf("%s .. %s", series[0].Key(), series[len(series)-1].Key())

	return asciigraph.PlotMany(
		data,
		asciigraph.Height(height),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(caption),
	)
}

func constantLine(level float64, length int) []float64 {
	line := make([]float64, length)
	for i := range line {
		line[i] = level
	}
	return line
}
