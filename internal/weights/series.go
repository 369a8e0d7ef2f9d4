package weights

import (
	"sort"
	"time"
)

// Series is a sequence of records, non-decreasing by timestamp. It is
// built fresh on every read and never cached.
type Series []Record

// rolling average half-window: every record within +-12h of a point
// contributes to that point's daily average
const halfWindow = 12 * time.Hour

// Window retains the records whose timestamp is at or after
// lastTimestamp - lookback, where lastTimestamp belongs to the latest
// record. The series must already be sorted. A zero lookback keeps every
// record exactly at the anchor timestamp.
func (s Series) Window(lookback time.Duration) (Series, error) {
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}

	cutoff := s[len(s)-1].Timestamp.Add(-lookback)
	first := sort.Search(len(s), func(i int) bool {
		return !s[i].Timestamp.Before(cutoff)
	})
	return s[first:], nil
}

// RollingDailyAverage computes, per record, the mean weight over the
// closed window of +-12h around its timestamp. Quadratic, which is fine at
// personal-tracker volumes.
func (s Series) RollingDailyAverage() []float64 {
	averages := make([]float64, len(s))
	for i, record := range s {
		from := record.Timestamp.Add(-halfWindow)
		to := record.Timestamp.Add(halfWindow)

		var sum float64
		var count int
		for _, other := range s {
			if other.Timestamp.Before(from) || other.Timestamp.After(to) {
				continue
			}
			sum += other.Kilos
			count++
		}
		// count >= 1, the record itself is always in its own window
		averages[i] = sum / float64(count)
	}
	return averages
}

// Kilos returns the weight values in series order.
func (s Series) Kilos() []float64 {
	kilos := make([]float64, len(s))
	for i, record := range s {
		kilos[i] = record.Kilos
	}
	return kilos
}

// MinMax returns the smallest and largest weight in the series.
func (s Series) MinMax() (min, max float64) {
	if len(s) == 0 {
		return 0, 0
	}
	min, max = s[0].Kilos, s[0].Kilos
	for _, record := range s[1:] {
		if record.Kilos < min {
			min = record.Kilos
		}
		if record.Kilos > max {
			max = record.Kilos
		}
	}
	return min, max
}
