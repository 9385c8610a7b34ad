// Package session orchestrates one run of the till: it owns the catalog,
// the history of every shift opened since startup, the currently open
// shift and the order/shift numbering.  All mutation goes through one
// mutex so the HTTP till and any background caller see each aggregate
// atomically; there is exactly one logical actor, so one lock is enough.
//
// The session validates menu selections for existence against the
// catalog; composition and capacity validation stays inside the portion
// constructor.  Nothing here prints or logs.
package session

import (
	"sync"
	"time"

	"github.com/adilbekov/icecream-parlor/internal/catalog"
	"github.com/adilbekov/icecream-parlor/internal/model"
)

// ScoopSpec selects one scoop line by 1-based flavor menu number.
type ScoopSpec struct {
	Flavor int `json:"flavor"`
	Balls  int `json:"balls"`
}

// PortionSpec selects one portion by 1-based menu numbers.  Topping is
// nil when no topping is wanted.
type PortionSpec struct {
	Container int         `json:"container"`
	Scoops    []ScoopSpec `json:"scoops"`
	Topping   *int        `json:"topping,omitempty"`
}

// ShiftSummary is a point-in-time snapshot of one shift, safe to hand to
// renderers and JSON encoders.
type ShiftSummary struct {
	Number    uint64           `json:"number"`
	State     model.ShiftState `json:"state"`
	StartedAt *time.Time       `json:"started_at,omitempty"`
	EndedAt   *time.Time       `json:"ended_at,omitempty"`
	Orders    int              `json:"orders"`
	Revenue   int              `json:"revenue"`
}

// DailySummary aggregates revenue across every shift of the run,
// regardless of state.  It is computed on demand and never cached.
type DailySummary struct {
	Shifts       int            `json:"shifts"`
	TotalRevenue int            `json:"total_revenue"`
	PerShift     []ShiftSummary `json:"per_shift"`
}

// Parlor is the state of one till run.
type Parlor struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	now      func() time.Time
	orderSeq model.Sequence
	shiftSeq model.Sequence
	shifts   []*model.Shift
	current  *model.Shift
}

// New returns a session over the given catalog.  The clock stamps shift
// and payment times; pass nil to use time.Now.
func New(cat *catalog.Catalog, clock func() time.Time) *Parlor {
	if clock == nil {
		clock = time.Now
	}
	return &Parlor{catalog: cat, now: clock}
}

// Menu returns the read-only catalog.
func (p *Parlor) Menu() *catalog.Catalog { return p.catalog }

// OpenShift opens a new shift and records it in the run history.  When a
// shift is already open it returns that shift with opened=false; opening
// on top of an open shift is a user-facing no-op, not an error.
func (p *Parlor) OpenShift() (*model.Shift, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current != nil && p.current.IsOpen() {
		return p.current, false
	}
	s := model.NewShift(p.shiftSeq.Next())
	// Open cannot fail on a freshly constructed shift.
	_ = s.Open(p.now())
	p.shifts = append(p.shifts, s)
	p.current = s
	return s, true
}

// CloseShift closes the currently open shift and clears the current
// pointer.  It returns model.ErrShiftNotOpen when no shift is open.
func (p *Parlor) CloseShift() (*model.Shift, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil, model.ErrShiftNotOpen
	}
	s := p.current
	if err := s.Close(p.now()); err != nil {
		return nil, err
	}
	p.current = nil
	return s, nil
}

// CurrentShift returns the open shift, or nil when none is open.
func (p *Parlor) CurrentShift() *model.Shift {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// BuildPortion resolves the spec's menu numbers against the catalog and
// constructs the portion.  Unknown numbers surface the catalog sentinel
// errors; composition and capacity failures surface the model sentinels.
func (p *Parlor) BuildPortion(spec PortionSpec) (*model.Portion, error) {
	container, err := p.catalog.ContainerAt(spec.Container)
	if err != nil {
		return nil, err
	}
	flavors := make([]model.Flavor, 0, len(spec.Scoops))
	counts := make([]int, 0, len(spec.Scoops))
	for _, s := range spec.Scoops {
		f, err := p.catalog.FlavorAt(s.Flavor)
		if err != nil {
			return nil, err
		}
		flavors = append(flavors, f)
		counts = append(counts, s.Balls)
	}
	var topping *model.Topping
	if spec.Topping != nil {
		t, err := p.catalog.ToppingAt(*spec.Topping)
		if err != nil {
			return nil, err
		}
		topping = &t
	}
	return model.NewPortion(container, flavors, counts, topping)
}

// PlaceOrder builds every portion, assembles an order under the next
// order number and adds it to the open shift, which pays it.  Nothing is
// recorded and no order number is consumed unless every portion is valid
// and a shift is open.  An empty spec list fails with model.ErrEmptyOrder.
func (p *Parlor) PlaceOrder(specs []PortionSpec) (*model.Order, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil || !p.current.IsOpen() {
		return nil, model.ErrShiftNotOpen
	}
	if len(specs) == 0 {
		return nil, model.ErrEmptyOrder
	}
	portions := make([]*model.Portion, 0, len(specs))
	for _, spec := range specs {
		portion, err := p.BuildPortion(spec)
		if err != nil {
			return nil, err
		}
		portions = append(portions, portion)
	}
	order := model.NewOrder(p.orderSeq.Next())
	for _, portion := range portions {
		order.AddPortion(portion)
	}
	if err := p.current.AddOrder(order, p.now()); err != nil {
		return nil, err
	}
	return order, nil
}

// Summarize snapshots one shift.
func Summarize(s *model.Shift) ShiftSummary {
	return ShiftSummary{
		Number:    s.Number(),
		State:     s.State(),
		StartedAt: s.StartedAt(),
		EndedAt:   s.EndedAt(),
		Orders:    len(s.Orders()),
		Revenue:   s.Revenue(),
	}
}

// DailySummary totals revenue across all shifts of the run, open or
// closed.
func (p *Parlor) DailySummary() DailySummary {
	p.mu.Lock()
	defer p.mu.Unlock()
	sum := DailySummary{Shifts: len(p.shifts), PerShift: make([]ShiftSummary, 0, len(p.shifts))}
	for _, s := range p.shifts {
		sum.TotalRevenue += s.Revenue()
		sum.PerShift = append(sum.PerShift, Summarize(s))
	}
	return sum
}
