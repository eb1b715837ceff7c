package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned for unknown order, material or printer ids.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState is returned when an operation is rejected because of
	// the order's current state: finalizing a non-accepted order, a printer
	// re-accepting an order, revealing identity before selection.
	ErrInvalidState = errors.New("invalid state")
)

// DegradedMatchError records a per-candidate fault during distribution or
// ranking. It is logged and skipped; it never aborts the surrounding pass.
type DegradedMatchError struct {
	PrinterID  string
	MaterialID string
	Reason     string
	Err        error
}

func (e *DegradedMatchError) Error() string {
	msg := fmt.Sprintf("degraded match: %s", e.Reason)
	if e.PrinterID != "" {
		msg += fmt.Sprintf(" (printer %s)", e.PrinterID)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DegradedMatchError) Unwrap() error {
	return e.Err
}
