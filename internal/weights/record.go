package weights

import (
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/weightstats/internal/store"
)

// timestamp formats:
//   - TimestampLayout is the wire format and the store key format
//   - ShortTimestampLayout is an input convenience, combined with the
//     current year and zero seconds
const (
	TimestampLayout      = "01/02/2006-15:04:05"
	ShortTimestampLayout = "01/02 15:04"
)

// stored attribute names
const (
	attrTimestamp = store.KeyAttribute
	attrWeight    = "weight"
	attrWorkout   = "workout"
	attrCalories  = "calories"
)

// Record is a single weight measurement, optionally annotated with a
// workout name and calories burned. Workout and Calories are either both
// nil or both set. Records are immutable once constructed.
type Record struct {
	Timestamp time.Time `json:"timestamp"`
	Kilos     float64   `json:"kilos"`
	Workout   *string   `json:"workout,omitempty"`
	Calories  *float64  `json:"calories,omitempty"`
}

// NewRecord validates the given values and constructs a Record. The
// timestamp is truncated to second resolution, matching the wire format.
func NewRecord(timestamp time.Time, kilos float64, workout *string, calories *float64) (Record, error) {
	if kilos <= 0 {
		return Record{}, fmt.Errorf("%w: weight must be positive, got %v", ErrInvalidInput, kilos)
	}
	if (workout == nil) != (calories == nil) {
		return Record{}, fmt.Errorf("%w: workout and calories must be given together", ErrInvalidInput)
	}
	if calories != nil && *calories < 0 {
		return Record{}, fmt.Errorf("%w: calories cannot be negative, got %v", ErrInvalidInput, *calories)
	}

	return Record{
		Timestamp: timestamp.Truncate(time.Second),
		Kilos:     kilos,
		Workout:   workout,
		Calories:  calories,
	}, nil
}

// Key returns the store key of the record: its formatted timestamp.
func (r Record) Key() string {
	return r.Timestamp.Format(TimestampLayout)
}

// Item converts the record to its stored form.
func (r Record) Item() store.Item {
	item := store.Item{
		attrTimestamp: store.StringAttr(r.Key()),
		attrWeight:    store.NumberAttr(strconv.FormatFloat(r.Kilos, 'f', -1, 64)),
	}
	if r.Workout != nil && r.Calories != nil {
		item[attrWorkout] = store.StringAttr(*r.Workout)
		item[attrCalories] = store.NumberAttr(strconv.FormatFloat(*r.Calories, 'f', -1, 64))
	}
	return item
}

// RecordFromItem parses a raw stored item into a Record.
func RecordFromItem(item store.Item) (Record, error) {
	tsAttr, ok := item[attrTimestamp]
	if !ok {
		return Record{}, fmt.Errorf("%w: missing timestamp attribute", ErrMalformedRecord)
	}
	timestamp, err := time.ParseInLocation(TimestampLayout, tsAttr.Value, time.Local)
	if err != nil {
		return Record{}, fmt.Errorf("%w: bad timestamp %q", ErrMalformedRecord, tsAttr.Value)
	}

	weightAttr, ok := item[attrWeight]
	if !ok {
		return Record{}, fmt.Errorf("%w: missing weight attribute [%s]", ErrMalformedRecord, tsAttr.Value)
	}
	kilos, err := strconv.ParseFloat(weightAttr.Value, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: bad weight %q [%s]", ErrMalformedRecord, weightAttr.Value, tsAttr.Value)
	}

	// the write path enforces workout/calories co-presence already, but a
	// hand-edited item can still break it
	workoutAttr, hasWorkout := item[attrWorkout]
	caloriesAttr, hasCalories := item[attrCalories]
	if hasWorkout != hasCalories {
		return Record{}, fmt.Errorf(
			"%w: workout and calories must come together [%s]", ErrMalformedRecord, tsAttr.Value,
		)
	}

	record := Record{
		Timestamp: timestamp,
		Kilos:     kilos,
	}
	if hasWorkout {
		calories, err := strconv.ParseFloat(caloriesAttr.Value, 64)
		if err != nil {
			return Record{}, fmt.Errorf(
				"%w: bad calories %q [%s]", ErrMalformedRecord, caloriesAttr.Value, tsAttr.Value,
			)
		}
		workout := workoutAttr.Value
		record.Workout = &workout
		record.Calories = &calories
	}

	return record, nil
}

// ParseTimestamp parses a user-supplied timestamp, accepting the long wire
// format or the short form, which takes the year from now.
func ParseTimestamp(value string, now time.Time) (time.Time, error) {
	if t, err := time.ParseInLocation(TimestampLayout, value, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(ShortTimestampLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q matches neither %q nor %q",
			value, TimestampLayout, ShortTimestampLayout)
	}
	return time.Date(now.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}
