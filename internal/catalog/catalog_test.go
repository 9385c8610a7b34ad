package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilbekov/icecream-parlor/internal/model"
)

func testCatalog() *Catalog {
	return New(
		[]model.Flavor{{Name: "Vanilla", PricePerBall: 50}, {Name: "Cherry", PricePerBall: 100}},
		[]model.Topping{{Name: "Caramel", Price: 30}},
		[]model.Container{{TypeName: "Paper cup", MaxBalls: 2, BasePrice: 0}},
	)
}

func TestCatalog_Lookups(t *testing.T) {
	c := testCatalog()

	f, err := c.FlavorAt(2)
	require.NoError(t, err)
	assert.Equal(t, "Cherry", f.Name)

	top, err := c.ToppingAt(1)
	require.NoError(t, err)
	assert.Equal(t, 30, top.Price)

	ct, err := c.ContainerAt(1)
	require.NoError(t, err)
	assert.Equal(t, 2, ct.MaxBalls)
}

func TestCatalog_UnknownNumbers(t *testing.T) {
	c := testCatalog()

	// Menu numbering is 1-based, so 0 is always out of range.
	_, err := c.FlavorAt(0)
	assert.ErrorIs(t, err, ErrUnknownFlavor)
	_, err = c.FlavorAt(3)
	assert.ErrorIs(t, err, ErrUnknownFlavor)
	_, err = c.ToppingAt(2)
	assert.ErrorIs(t, err, ErrUnknownTopping)
	_, err = c.ContainerAt(-1)
	assert.ErrorIs(t, err, ErrUnknownContainer)
}

func TestCatalog_EmptyCategory(t *testing.T) {
	c := New(nil, nil, nil)
	_, err := c.FlavorAt(1)
	assert.ErrorIs(t, err, ErrUnknownFlavor)
}
