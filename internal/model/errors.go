// Package model holds the priced domain core of the parlor: catalog value
// objects, portions, orders and shifts.  The sentinel errors below let the
// session layer and the handlers distinguish recoverable validation
// failures (bad portion composition) from lifecycle violations (paying an
// empty order, reopening a closed shift).  The model itself never prints
// or logs; callers translate these values into operator-facing messages.
package model

import "errors"

// ErrInvalidComposition is returned when a portion is built from an empty
// composition, from flavor and count lists of different lengths, or with
// a scoop count below 1.
var ErrInvalidComposition = errors.New("invalid portion composition")

// ErrCapacityExceeded is returned when the scoops of a portion do not fit
// into the chosen container.
var ErrCapacityExceeded = errors.New("container capacity exceeded")

// ErrEmptyOrder is returned when an order with no portions is paid or
// placed.
var ErrEmptyOrder = errors.New("order has no portions")

// ErrOrderAlreadyPaid is returned when Pay is called on an order that has
// already been paid.  Payment is a one-shot transition; the timestamp is
// never re-stamped.
var ErrOrderAlreadyPaid = errors.New("order already paid")

// ErrShiftNotOpen is returned when an order is added to, or a close is
// requested on, a shift that is not currently open.
var ErrShiftNotOpen = errors.New("shift is not open")

// ErrShiftClosed is returned when a closed shift is opened again.  Closed
// is a terminal state.
var ErrShiftClosed = errors.New("shift already closed")
