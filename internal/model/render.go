package model

import (
	"fmt"
	"strings"
)

// dotLine formats a menu entry as a name left-padded with dots up to a
// fixed price column, e.g. "Pistachio.....................80".  The
// widths match the receipt layout used by the console till.
func dotLine(name string, price int) string {
	if len(name) > 30 {
		name = name[:30]
	}
	p := fmt.Sprint(price)
	dots := 40 - len(name) - len(p)
	if dots < 1 {
		dots = 1
	}
	return name + strings.Repeat(".", dots) + p
}
