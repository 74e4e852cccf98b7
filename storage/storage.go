package storage

import (
	"context"
	"fmt"

	"procurement-backend/models"
)

// RowStore is the ledger backend the order handlers talk to: an
// append-only table of rows living behind a network API.
type RowStore interface {
	// FetchAll returns every ledger row in store iteration order,
	// which is append order.
	FetchAll(ctx context.Context) ([]models.Record, error)
	// Append adds one row holding the values in the fixed column
	// order. The row either fully lands or not at all.
	Append(ctx context.Context, row []interface{}) error
	// Ping checks that the backend is reachable with the configured
	// credentials.
	Ping(ctx context.Context) error
}

// StoreError wraps a failure to reach, authenticate against, or write
// the ledger backend. Its message is returned to the caller as-is.
type StoreError struct {
	Backend string
	Err     error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("Error accessing %s: %v", e.Backend, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
