package model

import (
	"fmt"
	"strings"
)

// Scoop is one line of a portion: a flavor together with how many balls
// of it were scooped.  Count is always at least 1.
type Scoop struct {
	Flavor Flavor `json:"flavor"`
	Count  int    `json:"count"`
}

// Portion is one priced order line: a container filled with scoops and an
// optional topping.  A portion is validated on construction and immutable
// afterwards; the accessors below return copies so callers cannot reach
// into its state.
type Portion struct {
	container Container
	scoops    []Scoop
	topping   *Topping
}

// NewPortion validates and builds a portion.  The flavors and counts
// slices are parallel: counts[i] scoops of flavors[i].  It returns
// ErrInvalidComposition when the slices differ in length, are empty or
// contain a count below 1, and ErrCapacityExceeded when the scoops do not
// fit into the container.  The same flavor may appear on more than one
// line; the constructor does not deduplicate.
func NewPortion(container Container, flavors []Flavor, counts []int, topping *Topping) (*Portion, error) {
	if len(flavors) != len(counts) {
		return nil, fmt.Errorf("%w: %d flavors for %d scoop counts", ErrInvalidComposition, len(flavors), len(counts))
	}
	if len(flavors) == 0 {
		return nil, fmt.Errorf("%w: no scoops selected", ErrInvalidComposition)
	}
	total := 0
	for i, n := range counts {
		if n < 1 {
			return nil, fmt.Errorf("%w: %d scoops of %q", ErrInvalidComposition, n, flavors[i].Name)
		}
		total += n
	}
	if total > container.MaxBalls {
		return nil, fmt.Errorf("%w: %d scoops in a %q holding %d", ErrCapacityExceeded, total, container.TypeName, container.MaxBalls)
	}
	scoops := make([]Scoop, len(flavors))
	for i := range flavors {
		scoops[i] = Scoop{Flavor: flavors[i], Count: counts[i]}
	}
	var top *Topping
	if topping != nil {
		t := *topping
		top = &t
	}
	return &Portion{container: container, scoops: scoops, topping: top}, nil
}

// Container returns the serving vessel of the portion.
func (p *Portion) Container() Container { return p.container }

// Scoops returns a copy of the portion's scoop lines in selection order.
func (p *Portion) Scoops() []Scoop {
	out := make([]Scoop, len(p.scoops))
	copy(out, p.scoops)
	return out
}

// Topping returns a copy of the portion's topping, or nil when none was
// selected.
func (p *Portion) Topping() *Topping {
	if p.topping == nil {
		return nil
	}
	t := *p.topping
	return &t
}

// TotalPrice computes the price of the portion: the container base price
// plus every scoop line priced per ball plus the topping, if any.  Pure
// integer arithmetic with no side effects.
func (p *Portion) TotalPrice() int {
	price := p.container.BasePrice
	for _, s := range p.scoops {
		price += s.Flavor.PricePerBall * s.Count
	}
	if p.topping != nil {
		price += p.topping.Price
	}
	return price
}

// String renders the portion as a single receipt line, e.g.
// "Waffle cone 2 x 'Pistachio', 1 x 'Cherry' with 'Caramel'  Price: 340".
func (p *Portion) String() string {
	var b strings.Builder
	b.WriteString(p.container.TypeName)
	for i, s := range p.scoops {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, " %d x '%s'", s.Count, s.Flavor.Name)
	}
	if p.topping != nil {
		fmt.Fprintf(&b, " with '%s'", p.topping.Name)
	}
	fmt.Fprintf(&b, "\tPrice:\t%d", p.TotalPrice())
	return b.String()
}
