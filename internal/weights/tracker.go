package weights

import (
	"context"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/weightstats/internal/store"
)

// Tracker turns raw stored items into display-ready series and delegates
// writes to the store. Stateless, one remote call per operation.
type Tracker struct {
	store store.Client
}

func NewTracker(storeClient store.Client) *Tracker {
	return &Tracker{
		store: storeClient,
	}
}

// Load scans the whole store, parses every item and returns the records
// sorted ascending by timestamp. Order among equal timestamps is
// unspecified - the store key makes duplicates impossible on the write path.
func (t *Tracker) Load(ctx context.Context) (Series, error) {
	items, err := t.store.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	series := make(Series, 0, len(items))
	for _, item := range items {
		record, err := RecordFromItem(item)
		if err != nil {
			return nil, err
		}
		series = append(series, record)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Timestamp.Before(series[j].Timestamp)
	})

	log.Debugf("loaded %d weight records", len(series))

	return series, nil
}

// Track upserts one record, keyed by its formatted timestamp. Tracking at
// an existing timestamp silently overwrites the stored record.
func (t *Tracker) Track(ctx context.Context, record Record) error {
	if err := t.store.Put(ctx, record.Item()); err != nil {
		return fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	log.Debugf("tracked %.1f kg at %s", record.Kilos, record.Key())

	return nil
}

// Delete removes the record stored under the given timestamp key. No local
// existence check - deleting a missing key is a no-op.
func (t *Tracker) Delete(ctx context.Context, timestamp string) error {
	if err := t.store.Delete(ctx, timestamp); err != nil {
		return fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	log.Debugf("deleted weight record at %s", timestamp)

	return nil
}
