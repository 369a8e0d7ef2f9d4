package weights

import "errors"

var (
	// ErrMalformedRecord - a stored item could not be parsed into a Record.
	ErrMalformedRecord = errors.New("malformed weight record")
	// ErrInvalidInput - user supplied values violate record constraints.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptySeries - a window filter was attempted on a series with no records.
	ErrEmptySeries = errors.New("empty weight series")
	// ErrStoreUnavailable - a remote store call failed.
	ErrStoreUnavailable = errors.New("weights store unavailable")
)
