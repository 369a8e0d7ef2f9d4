package store

import (
	"context"
	"sync"
)

// compile time check - ensure that TestClient implements Client interface
var _ Client = (*TestClient)(nil)

// TestClient is an in-memory Client used in tests instead of the real
// store. Operations can be made to fail by setting the *Err fields.
type TestClient struct {
	items map[string]Item
	mutex sync.Mutex

	PutErr    error
	DeleteErr error
	ScanErr   error
}

func NewTestClient() *TestClient {
	return &TestClient{
		items: make(map[string]Item),
	}
}

func (tc *TestClient) Put(_ context.Context, item Item) error {
	if tc.PutErr != nil {
		return tc.PutErr
	}
	key, ok := item[KeyAttribute]
	if !ok {
		return ErrMissingKey
	}

	tc.mutex.Lock()
	defer tc.mutex.Unlock()
	tc.items[key.Value] = item
	return nil
}

func (tc *TestClient) Delete(_ context.Context, timestamp string) error {
	if tc.DeleteErr != nil {
		return tc.DeleteErr
	}

	tc.mutex.Lock()
	defer tc.mutex.Unlock()
	delete(tc.items, timestamp)
	return nil
}

func (tc *TestClient) ScanAll(_ context.Context) ([]Item, error) {
	if tc.ScanErr != nil {
		return nil, tc.ScanErr
	}

	tc.mutex.Lock()
	defer tc.mutex.Unlock()
	items := make([]Item, 0, len(tc.items))
	for _, item := range tc.items {
		items = append(items, item)
	}
	return items, nil
}

func (tc *TestClient) Get(timestamp string) (Item, bool) {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()
	item, ok := tc.items[timestamp]
	return item, ok
}

func (tc *TestClient) Count() int {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()
	return len(tc.items)
}
