package model

import (
	"fmt"
	"strings"
	"time"
)

// ShiftState names the lifecycle state of a shift.  The progression is
// strictly Unopened -> Open -> Closed; Closed is terminal.
type ShiftState string

const (
	ShiftUnopened ShiftState = "UNOPENED"
	ShiftOpen     ShiftState = "OPEN"
	ShiftClosed   ShiftState = "CLOSED"
)

// Shift is an accounting period at the till.  Orders may only be added
// while the shift is open, and adding an order pays it.  Revenue is the
// sum over all contained orders and can be read in any state.
//
// Fields (all unexported; use the accessors):
//  number  – shift sequence number, independent of order numbering.
//  startAt – opening instant, nil while unopened.
//  endAt   – closing instant, nil until closed.
//  orders  – paid orders in the order they were added.
type Shift struct {
	number  uint64
	startAt *time.Time
	endAt   *time.Time
	orders  []*Order
}

// NewShift returns an unopened shift carrying the given sequence number.
func NewShift(number uint64) *Shift {
	return &Shift{number: number}
}

// Number returns the shift's sequence number.
func (s *Shift) Number() uint64 { return s.number }

// State derives the lifecycle state from the two timestamps.
func (s *Shift) State() ShiftState {
	switch {
	case s.endAt != nil:
		return ShiftClosed
	case s.startAt != nil:
		return ShiftOpen
	default:
		return ShiftUnopened
	}
}

// IsOpen reports whether the shift is currently open.
func (s *Shift) IsOpen() bool { return s.State() == ShiftOpen }

// StartedAt returns the opening instant, or nil while unopened.
func (s *Shift) StartedAt() *time.Time { return copyTime(s.startAt) }

// EndedAt returns the closing instant, or nil until closed.
func (s *Shift) EndedAt() *time.Time { return copyTime(s.endAt) }

// Open transitions the shift to the open state, stamping the start time.
// Opening an already open shift is a no-op: the state and the original
// start time are kept.  Opening a closed shift fails with ErrShiftClosed.
func (s *Shift) Open(now time.Time) error {
	switch s.State() {
	case ShiftOpen:
		return nil
	case ShiftClosed:
		return ErrShiftClosed
	}
	s.startAt = &now
	return nil
}

// Close transitions the shift to its terminal closed state, stamping the
// end time.  It fails with ErrShiftNotOpen unless the shift is open.
func (s *Shift) Close(now time.Time) error {
	if !s.IsOpen() {
		return ErrShiftNotOpen
	}
	s.endAt = &now
	return nil
}

// AddOrder pays the order at the given instant and appends it to the
// shift.  It fails with ErrShiftNotOpen when the shift is not open and
// propagates payment failures (ErrEmptyOrder, ErrOrderAlreadyPaid), in
// which case the shift is left unchanged.
func (s *Shift) AddOrder(o *Order, now time.Time) error {
	if !s.IsOpen() {
		return ErrShiftNotOpen
	}
	if err := o.Pay(now); err != nil {
		return err
	}
	s.orders = append(s.orders, o)
	return nil
}

// Orders returns the shift's paid orders in insertion order.  The slice
// is a copy.
func (s *Shift) Orders() []*Order {
	out := make([]*Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Revenue sums the total price of every order added to the shift.  It
// never fails and reads 0 for a shift with no orders.
func (s *Shift) Revenue() int {
	total := 0
	for _, o := range s.orders {
		total += o.TotalPrice()
	}
	return total
}

// String renders the shift summary block shown at the till: number,
// start/end times, status, order count and revenue.
func (s *Shift) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Shift %d\n", s.number)
	if s.startAt != nil {
		fmt.Fprintf(&b, "Start: %s\n", s.startAt.Format("15:04:05"))
	} else {
		b.WriteString("Start: Not started\n")
	}
	if s.endAt != nil {
		fmt.Fprintf(&b, "End: %s\n", s.endAt.Format("15:04:05"))
	}
	status := "Closed"
	if s.IsOpen() {
		status = "Open"
	}
	fmt.Fprintf(&b, "Status: %s\n", status)
	fmt.Fprintf(&b, "Orders: %d\n", len(s.orders))
	fmt.Fprintf(&b, "Revenue: %d", s.Revenue())
	return b.String()
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
