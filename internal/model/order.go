package model

import (
	"fmt"
	"strings"
	"time"
)

// Order aggregates the portions sold in one transaction at the till.  An
// order starts empty and unpaid, collects portions one at a time and is
// paid exactly once; after payment the order is not mutated again.
//
// Fields (all unexported; use the accessors):
//  number   – till-wide sequence number drawn by the session.
//  portions – portions in the order they were added.
//  paidAt   – payment instant, nil while unpaid.
type Order struct {
	number   uint64
	portions []*Portion
	paidAt   *time.Time
}

// NewOrder returns an empty, unpaid order carrying the given sequence
// number.
func NewOrder(number uint64) *Order {
	return &Order{number: number}
}

// Number returns the order's sequence number.
func (o *Order) Number() uint64 { return o.number }

// AddPortion appends a portion to the order.  The portion was already
// validated by its constructor, so appending always succeeds.
func (o *Order) AddPortion(p *Portion) {
	o.portions = append(o.portions, p)
}

// Portions returns the order's portions in insertion order.  The slice is
// a copy; the portions themselves are immutable.
func (o *Order) Portions() []*Portion {
	out := make([]*Portion, len(o.portions))
	copy(out, o.portions)
	return out
}

// TotalPrice sums the prices of all portions.  An empty order costs 0.
func (o *Order) TotalPrice() int {
	total := 0
	for _, p := range o.portions {
		total += p.TotalPrice()
	}
	return total
}

// Paid reports whether the order has been paid.
func (o *Order) Paid() bool { return o.paidAt != nil }

// PaidAt returns the payment instant, or nil while the order is unpaid.
func (o *Order) PaidAt() *time.Time {
	if o.paidAt == nil {
		return nil
	}
	t := *o.paidAt
	return &t
}

// Pay marks the order as paid at the given instant.  It returns
// ErrEmptyOrder when the order holds no portions and ErrOrderAlreadyPaid
// on a second call; the payment timestamp is stamped once and never
// overwritten.
func (o *Order) Pay(now time.Time) error {
	if len(o.portions) == 0 {
		return ErrEmptyOrder
	}
	if o.paidAt != nil {
		return ErrOrderAlreadyPaid
	}
	o.paidAt = &now
	return nil
}

// String renders the order as a numbered list of portion lines followed
// by the total.
func (o *Order) String() string {
	if len(o.portions) == 0 {
		return "Empty order."
	}
	var b strings.Builder
	for i, p := range o.portions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	fmt.Fprintf(&b, "Total price: %d", o.TotalPrice())
	return b.String()
}
