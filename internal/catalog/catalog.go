// Package catalog loads and serves the parlor's priced reference data:
// flavors, toppings and containers.  The catalog is read once at startup
// from flat files and is read-only afterwards.  Lookups use the 1-based
// numbering shown on the printed menu, so the selection a customer points
// at maps directly onto a catalog index.
package catalog

import (
	"errors"

	"github.com/adilbekov/icecream-parlor/internal/model"
)

// ErrUnknownFlavor is returned when a flavor number does not exist on the
// menu.  Callers should translate this into a "pick again" prompt or an
// HTTP 400 response.
var ErrUnknownFlavor = errors.New("unknown flavor")

// ErrUnknownTopping is returned when a topping number does not exist on
// the menu.
var ErrUnknownTopping = errors.New("unknown topping")

// ErrUnknownContainer is returned when a container number does not exist
// on the menu.
var ErrUnknownContainer = errors.New("unknown container")

// Catalog holds the loaded menu.  The slices preserve file order because
// the menu numbering presented to the operator is positional.  A category
// may be empty when its file was missing or malformed; the till then
// simply has nothing to offer in that category.
type Catalog struct {
	Flavors    []model.Flavor    `json:"flavors"`
	Toppings   []model.Topping   `json:"toppings"`
	Containers []model.Container `json:"containers"`
}

// New returns a catalog over the given already-validated item lists.
func New(flavors []model.Flavor, toppings []model.Topping, containers []model.Container) *Catalog {
	return &Catalog{Flavors: flavors, Toppings: toppings, Containers: containers}
}

// FlavorAt resolves a 1-based menu number to a flavor.
func (c *Catalog) FlavorAt(n int) (model.Flavor, error) {
	if n < 1 || n > len(c.Flavors) {
		return model.Flavor{}, ErrUnknownFlavor
	}
	return c.Flavors[n-1], nil
}

// ToppingAt resolves a 1-based menu number to a topping.
func (c *Catalog) ToppingAt(n int) (model.Topping, error) {
	if n < 1 || n > len(c.Toppings) {
		return model.Topping{}, ErrUnknownTopping
	}
	return c.Toppings[n-1], nil
}

// ContainerAt resolves a 1-based menu number to a container.
func (c *Catalog) ContainerAt(n int) (model.Container, error) {
	if n < 1 || n > len(c.Containers) {
		return model.Container{}, ErrUnknownContainer
	}
	return c.Containers[n-1], nil
}
