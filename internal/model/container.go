package model

import (
	"fmt"
	"strings"
)

// Container is the serving vessel of a portion (a cone or a cup).  Every
// container limits how many scoops fit into it and may carry its own base
// price on top of the scoops.
//
// Fields:
//  TypeName  – display name of the container type.
//  MaxBalls  – scoop capacity; always at least 1.
//  BasePrice – price of the container itself, 0 for free vessels.
type Container struct {
	TypeName  string `json:"type_name"`  // containers.txt field 0
	MaxBalls  int    `json:"max_balls"`  // containers.txt field 1
	BasePrice int    `json:"base_price"` // containers.txt field 2
}

// String renders the container as a menu line including its capacity.
func (c Container) String() string {
	label := fmt.Sprintf("%-25s (cap. %d)", c.TypeName, c.MaxBalls)
	price := fmt.Sprint(c.BasePrice)
	width := 6 - len(price)
	if width < 0 {
		width = 0
	}
	return label + strings.Repeat(".", width) + price
}
