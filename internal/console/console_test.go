package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilbekov/icecream-parlor/internal/catalog"
	"github.com/adilbekov/icecream-parlor/internal/model"
	"github.com/adilbekov/icecream-parlor/internal/session"
)

// scriptPrompter replays a fixed sequence of operator answers.
type scriptPrompter struct {
	lines []string
	next  int
}

func (p *scriptPrompter) ReadLine(string) (string, bool) {
	if p.next >= len(p.lines) {
		return "", false
	}
	line := p.lines[p.next]
	p.next++
	return line, true
}

func testShell(lines ...string) (*Console, *session.Parlor, *bytes.Buffer) {
	cat := catalog.New(
		[]model.Flavor{{Name: "Vanilla", PricePerBall: 50}, {Name: "Cherry", PricePerBall: 100}},
		[]model.Topping{{Name: "Caramel", Price: 30}},
		[]model.Container{{TypeName: "Paper cup", MaxBalls: 2, BasePrice: 30}},
	)
	parlor := session.New(cat, nil)
	out := &bytes.Buffer{}
	return New(parlor, &scriptPrompter{lines: lines}, out, "RUB"), parlor, out
}

func TestConsole_FullSession(t *testing.T) {
	shell, parlor, out := testShell(
		"n", // open shift
		"o", // new order
		"1", // container: paper cup
		"1", // flavor: vanilla
		"2", // two scoops fill the cup
		"n", // no topping
		"n", // no more portions
		"d", // daily summary
		"q", // quit (closes the shift)
	)
	shell.Run()

	text := out.String()
	assert.Contains(t, text, "Welcome to our ice cream parlor!")
	assert.Contains(t, text, "Shift 1 has just been successfully opened")
	assert.Contains(t, text, "Added: Paper cup 2 x 'Vanilla'")
	assert.Contains(t, text, "Order 1 for 130 RUB was paid")
	assert.Contains(t, text, "=== DAILY SUMMARY ===")
	assert.Contains(t, text, "Shift 1 has just been successfully closed")
	assert.Contains(t, text, "Thank you for visiting our ice cream parlor!")

	sum := parlor.DailySummary()
	assert.Equal(t, 1, sum.Shifts)
	assert.Equal(t, 130, sum.TotalRevenue)
	assert.Nil(t, parlor.CurrentShift(), "quit must close the open shift")
}

func TestConsole_OrderNeedsOpenShift(t *testing.T) {
	shell, parlor, out := testShell(
		"o", // new order without a shift
		"q",
	)
	shell.Run()

	assert.Contains(t, out.String(), "Please open a shift first.")
	assert.Equal(t, 0, parlor.DailySummary().Shifts)
}

func TestConsole_CancelPortionCancelsOrder(t *testing.T) {
	shell, parlor, out := testShell(
		"n", // open shift
		"o", // new order
		"x", // cancel at container selection
		"n", // no more portions
		"q",
	)
	shell.Run()

	assert.Contains(t, out.String(), "Order canceled.")
	require.Equal(t, 1, parlor.DailySummary().Shifts)
	assert.Equal(t, 0, parlor.DailySummary().TotalRevenue)
}

func TestConsole_RetriesOnBadInput(t *testing.T) {
	shell, _, out := testShell(
		"z",  // unknown action
		"n",  // open shift
		"o",  // new order
		"9",  // invalid container number
		"1",  // valid container
		"no", // not a flavor number or cancel
		"2",  // flavor: cherry
		"5",  // more scoops than fit
		"2",  // two scoops fill the cup
		"n",  // no topping
		"n",  // no more portions
		"q",
	)
	shell.Run()

	text := out.String()
	assert.Contains(t, text, "Incorrect input. Please select the action from menu.")
	assert.Contains(t, text, "Invalid container number. Please try again.")
	assert.Contains(t, text, "Please enter a valid number or 'X' to cancel.")
	assert.Contains(t, text, "Please enter a number between 1 and 2.")
	assert.Contains(t, text, "Order 1 for 230 RUB was paid")
}

func TestConsole_WithTopping(t *testing.T) {
	shell, _, out := testShell(
		"n", // open shift
		"o", // new order
		"1", // container
		"1", // vanilla
		"1", // one scoop
		"n", // no more flavors
		"y", // add topping
		"1", // caramel
		"n", // no more portions
		"q",
	)
	shell.Run()

	// 30 cup + 50 scoop + 30 topping
	assert.Contains(t, out.String(), "Order 1 for 110 RUB was paid")
}

func TestConsole_MenuShowsAllCategories(t *testing.T) {
	shell, _, out := testShell("m", "q")
	shell.Run()

	text := out.String()
	assert.Contains(t, text, "Ice cream flavors (RUB/ball):")
	assert.Contains(t, text, "Toppings (RUB):")
	assert.Contains(t, text, "Cones or Cups (RUB):")
	assert.Contains(t, text, "Vanilla")
	assert.Contains(t, text, "Caramel")
	assert.Contains(t, text, "Paper cup")
	assert.Contains(t, strings.ToLower(text), "cap. 2")
}
