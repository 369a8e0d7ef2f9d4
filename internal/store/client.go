package store

import "context"

// Kind is the wire type tag of a stored attribute value.
type Kind string

const (
	KindString Kind = "String"
	KindNumber Kind = "Number"
)

// Attr is one typed attribute of a stored item. Numbers keep their string
// encoding, as the store returns them.
type Attr struct {
	Kind  Kind
	Value string
}

func StringAttr(value string) Attr {
	return Attr{Kind: KindString, Value: value}
}

func NumberAttr(value string) Attr {
	return Attr{Kind: KindNumber, Value: value}
}

// Item is one raw stored record: attribute name -> typed value. Every item
// carries at least the "timestamp" attribute, which is also the store key.
type Item map[string]Attr

// Client is the narrow gateway to the remote weights item store.
type Client interface {
	// Put upserts the item, keyed by its "timestamp" attribute. An existing
	// item under the same key is silently overwritten.
	Put(ctx context.Context, item Item) error
	// Delete removes the item stored under the given timestamp key.
	// Deleting a missing key is not an error.
	Delete(ctx context.Context, timestamp string) error
	// ScanAll returns every stored item, in no particular order.
	ScanAll(ctx context.Context) ([]Item, error)
}
