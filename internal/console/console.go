// Package console implements the interactive till shell: the menu
// display, the action loop and the portion builder the operator walks
// through for every order.  All domain decisions are delegated to the
// session; this package only parses input, retries on mistakes and
// renders results.
package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/adilbekov/icecream-parlor/internal/model"
	"github.com/adilbekov/icecream-parlor/internal/session"
)

// Console drives one operator session at the till.
type Console struct {
	session  *session.Parlor
	in       Prompter
	out      io.Writer
	currency string
}

// New constructs a Console over the given session, input source and
// output sink.  The currency label is display-only.
func New(s *session.Parlor, in Prompter, out io.Writer, currency string) *Console {
	return &Console{session: s, in: in, out: out, currency: currency}
}

// Run prints the welcome banner and menu, then loops on the action
// prompt until the operator quits or input runs out.  Quitting closes an
// open shift and prints the daily summary, so nothing sold is lost
// silently.
func (c *Console) Run() {
	c.printWelcome()
	c.showMenu()
	for {
		fmt.Fprintln(c.out, "\n"+strings.Repeat("-", 40))
		fmt.Fprintln(c.out, "M: Show menu | N: Open shift | O: New order | C: Close shift | S: Total per shift | D: Total per day | Q: Exit")
		line, ok := c.in.ReadLine("Choose action: ")
		if !ok {
			c.quit()
			return
		}
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "M":
			c.showMenu()
		case "N":
			c.openShift()
		case "O":
			c.createOrder()
		case "C":
			c.closeShift()
		case "S":
			c.showShiftSummary()
		case "D":
			c.showDailySummary()
		case "Q":
			c.quit()
			return
		default:
			fmt.Fprintln(c.out, "Incorrect input. Please select the action from menu.")
		}
	}
}

func (c *Console) printWelcome() {
	welcome := "Welcome to our ice cream parlor!"
	border := strings.Repeat("-", len(welcome))
	fmt.Fprintf(c.out, "\n%s\n%s\n%s\n", border, welcome, border)
}

func (c *Console) showMenu() {
	menu := c.session.Menu()
	fmt.Fprintf(c.out, "\nIce cream flavors (%s/ball):\n", c.currency)
	for i, f := range menu.Flavors {
		fmt.Fprintf(c.out, "\t%d. %s\n", i+1, f)
	}
	fmt.Fprintf(c.out, "\nToppings (%s):\n", c.currency)
	for i, t := range menu.Toppings {
		fmt.Fprintf(c.out, "\t%d. %s\n", i+1, t)
	}
	fmt.Fprintf(c.out, "\nCones or Cups (%s):\n", c.currency)
	for i, ct := range menu.Containers {
		fmt.Fprintf(c.out, "\t%d. %s\n", i+1, ct)
	}
}

func (c *Console) openShift() {
	shift, opened := c.session.OpenShift()
	if !opened {
		fmt.Fprintf(c.out, "Shift %d is already opened.\n", shift.Number())
		return
	}
	fmt.Fprintf(c.out, "Shift %d has just been successfully opened at %s.\n",
		shift.Number(), shift.StartedAt().Format("15:04:05"))
}

func (c *Console) closeShift() {
	shift, err := c.session.CloseShift()
	if err != nil {
		fmt.Fprintln(c.out, "No open shift to close.")
		return
	}
	fmt.Fprintf(c.out, "Shift %d has just been successfully closed at %s.\n",
		shift.Number(), shift.EndedAt().Format("15:04:05"))
	c.renderShift(session.Summarize(shift))
}

func (c *Console) showShiftSummary() {
	shift := c.session.CurrentShift()
	if shift == nil {
		fmt.Fprintln(c.out, "No open shift.")
		return
	}
	c.renderShift(session.Summarize(shift))
}

func (c *Console) showDailySummary() {
	sum := c.session.DailySummary()
	if sum.Shifts == 0 {
		fmt.Fprintln(c.out, "No shift today.")
		return
	}
	fmt.Fprintln(c.out, "\n=== DAILY SUMMARY ===")
	fmt.Fprintf(c.out, "Shifts: %d\n", sum.Shifts)
	fmt.Fprintf(c.out, "Total revenue: %d %s\n", sum.TotalRevenue, c.currency)
	for _, s := range sum.PerShift {
		fmt.Fprintln(c.out)
		c.renderShift(s)
	}
}

func (c *Console) quit() {
	if c.session.CurrentShift() != nil {
		c.closeShift()
	}
	if c.session.DailySummary().Shifts > 0 {
		c.showDailySummary()
	}
	fmt.Fprintln(c.out, "\nThank you for visiting our ice cream parlor!")
}

// createOrder walks the operator through building portions and places
// the finished order on the open shift, which pays it.
func (c *Console) createOrder() {
	if c.session.CurrentShift() == nil {
		fmt.Fprintln(c.out, "Please open a shift first.")
		return
	}
	var specs []session.PortionSpec
	for {
		spec, built := c.buildPortionSpec()
		if built {
			// Preview the portion so the operator sees the priced line
			// before committing the order.
			portion, err := c.session.BuildPortion(*spec)
			if err != nil {
				fmt.Fprintf(c.out, "Cannot add portion: %v\n", err)
			} else {
				specs = append(specs, *spec)
				fmt.Fprintf(c.out, "Added: %s %s\n", portion, c.currency)
			}
		}
		if !c.yesNo("Add another portion? (Y/n) ") {
			break
		}
	}
	if len(specs) == 0 {
		fmt.Fprintln(c.out, "Order canceled.")
		return
	}
	order, err := c.session.PlaceOrder(specs)
	if err != nil {
		fmt.Fprintf(c.out, "Cannot place order: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Order %d for %d %s was paid at %s.\n",
		order.Number(), order.TotalPrice(), c.currency, order.PaidAt().Format("15:04:05"))
}

// buildPortionSpec collects one portion selection: container, flavors
// with scoop counts up to the remaining capacity, and an optional
// topping.  It returns built=false when the operator cancels.
func (c *Console) buildPortionSpec() (*session.PortionSpec, bool) {
	menu := c.session.Menu()
	fmt.Fprintln(c.out, "\nCreating a new portion:")
	containerNo, ok := c.selectItem(len(menu.Containers), "Select a container (number) or 'X' to cancel: ", "container")
	if !ok {
		return nil, false
	}
	container, _ := menu.ContainerAt(containerNo)
	spec := session.PortionSpec{Container: containerNo}
	remaining := container.MaxBalls
	for remaining > 0 {
		flavorNo, ok := c.selectItem(len(menu.Flavors), "Select a flavor (number) or 'X' to cancel: ", "flavor")
		if !ok {
			if len(spec.Scoops) == 0 {
				return nil, false
			}
			break
		}
		balls := c.intInRange(fmt.Sprintf("How many scoops (1-%d)? ", remaining), 1, remaining)
		spec.Scoops = append(spec.Scoops, session.ScoopSpec{Flavor: flavorNo, Balls: balls})
		remaining -= balls
		if remaining == 0 {
			break
		}
		if !c.yesNo("Add more flavors? (Y/n) ") {
			break
		}
	}
	if len(menu.Toppings) > 0 && c.yesNo("Add topping? (Y/n) ") {
		if toppingNo, ok := c.selectItem(len(menu.Toppings), "Select topping (number): ", "topping"); ok {
			spec.Topping = &toppingNo
		}
	}
	return &spec, true
}

// selectItem prompts until the operator enters a valid 1-based item
// number or cancels with 'X'.
func (c *Console) selectItem(count int, prompt, itemName string) (int, bool) {
	for {
		line, ok := c.in.ReadLine(prompt)
		if !ok {
			return 0, false
		}
		choice := strings.ToLower(strings.TrimSpace(line))
		if choice == "x" {
			return 0, false
		}
		n, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a valid number or 'X' to cancel.")
			continue
		}
		if n < 1 || n > count {
			fmt.Fprintf(c.out, "Invalid %s number. Please try again.\n", itemName)
			continue
		}
		return n, true
	}
}

// intInRange prompts until the operator enters an integer within
// [min, max].
func (c *Console) intInRange(prompt string, min, max int) int {
	for {
		line, ok := c.in.ReadLine(prompt)
		if !ok {
			return min
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a valid number.")
			continue
		}
		if n < min || n > max {
			fmt.Fprintf(c.out, "Invalid input. Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return n
	}
}

// yesNo prompts for a yes/no answer; an empty line counts as yes.
func (c *Console) yesNo(prompt string) bool {
	for {
		line, ok := c.in.ReadLine(prompt)
		if !ok {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes", "":
			return true
		case "n", "no":
			return false
		default:
			fmt.Fprintln(c.out, "Please enter 'Y' for yes or 'N' for no.")
		}
	}
}

// renderShift prints the shift summary block shown at the till.
func (c *Console) renderShift(s session.ShiftSummary) {
	fmt.Fprintf(c.out, "Shift %d\n", s.Number)
	if s.StartedAt != nil {
		fmt.Fprintf(c.out, "Start: %s\n", s.StartedAt.Format("15:04:05"))
	} else {
		fmt.Fprintln(c.out, "Start: Not started")
	}
	if s.EndedAt != nil {
		fmt.Fprintf(c.out, "End: %s\n", s.EndedAt.Format("15:04:05"))
	}
	status := "Closed"
	if s.State == model.ShiftOpen {
		status = "Open"
	}
	fmt.Fprintf(c.out, "Status: %s\n", status)
	fmt.Fprintf(c.out, "Orders: %d\n", s.Orders)
	fmt.Fprintf(c.out, "Revenue: %d %s\n", s.Revenue, c.currency)
}
