package model

// Topping represents an optional extra added on top of a portion.  Like
// all catalog items it is immutable once loaded.
//
// Fields:
//  Name  – display name of the topping.
//  Price – flat price added to the portion when selected.
type Topping struct {
	Name  string `json:"name"`  // toppings.txt field 0
	Price int    `json:"price"` // toppings.txt field 1
}

// String renders the topping as a single menu line in the same dotted
// format used for flavors.
func (t Topping) String() string {
	return dotLine(t.Name, t.Price)
}
