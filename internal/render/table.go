// Package render holds the presentation sinks: a table for list output and
// a terminal line chart for plot output. Both are pure consumers of an
// ordered series and its derived rolling average.
package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/2beens/weightstats/internal/weights"
)

// Table writes the series as a table, one row per record, with the rolling
// daily average alongside the raw weight. averages must be the series'
// derived overlay, same length and order.
func Table(w io.Writer, series weights.Series, averages []float64) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Timestamp", "Kilos", "Daily Avg", "Workout", "Calories"})

	for i, record := range series {
		row := []string{
			record.Key(),
			fmt.Sprintf("%.1f", record.Kilos),
			fmt.Sprintf("%.1f", averages[i]),
			"",
			"",
		}
		if record.Workout != nil && record.Calories != nil {
			row[3] = *record.Workout
			row[4] = fmt.Sprintf("%.0f", *record.Calories)
		}
		table.Append(row)
	}

	table.Render()
}
