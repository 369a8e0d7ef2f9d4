package weights_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/weightstats/internal/weights"
)

type point struct {
	at    time.Time
	kilos float64
}

func makeSeries(t *testing.T, points ...point) weights.Series {
	t.Helper()
	series := make(weights.Series, 0, len(points))
	for _, p := range points {
		record, err := weights.NewRecord(p.at, p.kilos, nil, nil)
		require.NoError(t, err)
		series = append(series, record)
	}
	return series
}

func TestSeries_Window_Empty(t *testing.T) {
	_, err := weights.Series{}.Window(24 * time.Hour)
	assert.ErrorIs(t, err, weights.ErrEmptySeries)

	_, err = weights.Series{}.Window(0)
	assert.ErrorIs(t, err, weights.ErrEmptySeries)
}

func TestSeries_Window_ZeroLookbackKeepsAnchor(t *testing.T) {
	last := time.Date(2025, 11, 23, 8, 0, 0, 0, time.Local)
	series := makeSeries(t,
		point{at: last.AddDate(0, 0, -3), kilos: 83},
		point{at: last.AddDate(0, 0, -1), kilos: 82},
		point{at: last, kilos: 81},
	)

	filtered, err := series.Window(0)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.True(t, filtered[0].Timestamp.Equal(last))
}

func TestSeries_Window(t *testing.T) {
	last := time.Date(2025, 11, 23, 8, 0, 0, 0, time.Local)
	series := makeSeries(t,
		point{at: last.AddDate(0, 0, -10), kilos: 85},
		point{at: last.AddDate(0, 0, -3), kilos: 83},
		point{at: last.AddDate(0, 0, -1), kilos: 82},
		point{at: last, kilos: 81},
	)

	filtered, err := series.Window(2 * 24 * time.Hour)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, 82.0, filtered[0].Kilos)
	assert.Equal(t, 81.0, filtered[1].Kilos)

	// a record exactly at the cutoff is retained (closed bound)
	filtered, err = series.Window(3 * 24 * time.Hour)
	require.NoError(t, err)
	require.Len(t, filtered, 3)
	assert.Equal(t, 83.0, filtered[0].Kilos)
}

func TestSeries_Window_MonotonicInLookback(t *testing.T) {
	last := time.Date(2025, 11, 23, 8, 0, 0, 0, time.Local)
	series := makeSeries(t,
		point{at: last.AddDate(0, 0, -21), kilos: 86},
		point{at: last.AddDate(0, 0, -13), kilos: 85},
		point{at: last.AddDate(0, 0, -6), kilos: 84},
		point{at: last.AddDate(0, 0, -2), kilos: 83},
		point{at: last, kilos: 82},
	)

	prevLen := 0
	for days := 0; days <= 25; days++ {
		filtered, err := series.Window(time.Duration(days) * 24 * time.Hour)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(filtered), prevLen, "lookback of %d days", days)
		prevLen = len(filtered)
	}
	assert.Equal(t, len(series), prevLen)
}

func TestSeries_RollingDailyAverage_SameDayPair(t *testing.T) {
	day := time.Date(2025, 11, 23, 0, 0, 0, 0, time.Local)
	series := makeSeries(t,
		point{at: day.Add(8 * time.Hour), kilos: 80},
		point{at: day.Add(20 * time.Hour), kilos: 82},
	)

	// both points fall within +-12h of each other
	averages := series.RollingDailyAverage()
	require.Len(t, averages, 2)
	assert.Equal(t, 81.0, averages[0])
	assert.Equal(t, 81.0, averages[1])
}

func TestSeries_RollingDailyAverage_WithinWindowBounds(t *testing.T) {
	start := time.Date(2025, 11, 1, 9, 0, 0, 0, time.Local)
	series := makeSeries(t,
		point{at: start, kilos: 84.2},
		point{at: start.Add(26 * time.Hour), kilos: 83.1},
		point{at: start.Add(30 * time.Hour), kilos: 85.7},
		point{at: start.Add(55 * time.Hour), kilos: 82.4},
		point{at: start.Add(80 * time.Hour), kilos: 83.9},
	)

	min, max := series.MinMax()
	averages := series.RollingDailyAverage()
	require.Len(t, averages, len(series))
	for i, avg := range averages {
		assert.GreaterOrEqual(t, avg, min, "point %d", i)
		assert.LessOrEqual(t, avg, max, "point %d", i)
	}
}

func TestSeries_RollingDailyAverage_IsolatedPoints(t *testing.T) {
	start := time.Date(2025, 11, 1, 9, 0, 0, 0, time.Local)
	series := makeSeries(t,
		point{at: start, kilos: 84},
		point{at: start.AddDate(0, 0, 5), kilos: 82},
	)

	// points further than 12h apart only average with themselves
	averages := series.RollingDailyAverage()
	require.Len(t, averages, 2)
	assert.Equal(t, 84.0, averages[0])
	assert.Equal(t, 82.0, averages[1])
}

func TestSeries_MinMax(t *testing.T) {
	start := time.Date(2025, 11, 1, 9, 0, 0, 0, time.Local)
	series := makeSeries(t,
		point{at: start, kilos: 84.2},
		point{at: start.AddDate(0, 0, 1), kilos: 86.1},
		point{at: start.AddDate(0, 0, 2), kilos: 83.4},
	)

	min, max := series.MinMax()
	assert.Equal(t, 83.4, min)
	assert.Equal(t, 86.1, max)
}
