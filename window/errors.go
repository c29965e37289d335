package window

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyIndex is returned when the position index is queried before the
	// first measurement pass has completed.
	ErrEmptyIndex = errors.New("window: position index is empty")

	// ErrBusy is returned when a reconciliation is requested while a previous
	// measurement request is still outstanding.
	ErrBusy = errors.New("window: measurement already pending")

	// ErrInvalidChange is returned when a change list does not describe the
	// index it is applied to.
	ErrInvalidChange = errors.New("window: invalid change")

	// ErrReordered is returned when surviving items changed their relative
	// order. Only insertions and deletions are reconciled.
	ErrReordered = errors.New("window: surviving items were reordered")
)

// MeasurementMismatchError reports a measurement pass that returned a
// different number of rows than the number of rows that were mounted.
type MeasurementMismatchError struct {
	Want int
	Got  int
}

func (e *MeasurementMismatchError) Error() string {
	return fmt.Sprintf("window: measured %d rows, want %d", e.Got, e.Want)
}

// IdentityCollisionError reports two items in the same list sharing an ID.
type IdentityCollisionError struct {
	ID     string
	First  int
	Second int
}

func (e *IdentityCollisionError) Error() string {
	return fmt.Sprintf("window: duplicate item id %q at %d and %d", e.ID, e.First, e.Second)
}

// checkUnique returns an IdentityCollisionError for the first duplicate ID in
// items, and the ID to position lookup otherwise.
func checkUnique(items []Item) (map[string]int, error) {
	seen := make(map[string]int, len(items))
	for i, item := range items {
		id := item.ID()
		if first, ok := seen[id]; ok {
			return nil, &IdentityCollisionError{ID: id, First: first, Second: i}
		}
		seen[id] = i
	}
	return seen, nil
}
