package model

// Flavor represents one ice-cream flavor on the parlor menu.  Flavors are
// loaded from the catalog files at startup and never change afterwards.
// Prices are flat integer units; there is no fractional currency anywhere
// in the system.
//
// Fields:
//  Name         – display name of the flavor.
//  PricePerBall – price of a single scoop of this flavor.
type Flavor struct {
	Name         string `json:"name"`           // flavors.txt field 0
	PricePerBall int    `json:"price_per_ball"` // flavors.txt field 1
}

// String renders the flavor as a single menu line, dot-padding the name
// up to the price column.
func (f Flavor) String() string {
	return dotLine(f.Name, f.PricePerBall)
}
