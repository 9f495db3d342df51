package store

import "context"

// DefaultSlotName is the key the shelf is stored under.
const DefaultSlotName = "books"

// Slot is one named, host-provided text value. A missing slot is reported
// with ok=false and no error.
type Slot interface {
	Get(ctx context.Context) (value string, ok bool, err error)
	Set(ctx context.Context, value string) error
	Delete(ctx context.Context) error
}
