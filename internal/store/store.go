package store

import (
	"context"
	"errors"
)

// ErrEmptyKey is returned when a key-value operation is given a blank key.
var ErrEmptyKey = errors.New("key is required")

// KeyValue defines the persistence operations used by the list store.
// Values are opaque strings; a missing key is reported with ok == false.
type KeyValue interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error

	// Lifecycle
	Close() error
}
