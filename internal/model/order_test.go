package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPortion(t *testing.T) *Portion {
	t.Helper()
	p, err := NewPortion(cone, []Flavor{vanilla}, []int{2}, nil)
	require.NoError(t, err)
	return p
}

func TestOrder_Empty(t *testing.T) {
	o := NewOrder(1)
	assert.Equal(t, uint64(1), o.Number())
	assert.Equal(t, 0, o.TotalPrice())
	assert.False(t, o.Paid())
	assert.Nil(t, o.PaidAt())
	assert.Equal(t, "Empty order.", o.String())
}

func TestOrder_PayEmptyFails(t *testing.T) {
	o := NewOrder(1)
	err := o.Pay(time.Now())
	require.ErrorIs(t, err, ErrEmptyOrder)
	assert.False(t, o.Paid())
	assert.Nil(t, o.PaidAt())
}

func TestOrder_PayOnce(t *testing.T) {
	o := NewOrder(7)
	o.AddPortion(testPortion(t))
	o.AddPortion(testPortion(t))
	assert.Equal(t, 420, o.TotalPrice()) // two portions at 50 + 2x80

	at := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	require.NoError(t, o.Pay(at))
	assert.True(t, o.Paid())
	require.NotNil(t, o.PaidAt())
	assert.Equal(t, at, *o.PaidAt())
}

func TestOrder_SecondPayIsRejected(t *testing.T) {
	o := NewOrder(1)
	o.AddPortion(testPortion(t))

	first := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	require.NoError(t, o.Pay(first))

	err := o.Pay(first.Add(time.Minute))
	require.ErrorIs(t, err, ErrOrderAlreadyPaid)
	// The original payment instant survives; it is never re-stamped.
	require.NotNil(t, o.PaidAt())
	assert.Equal(t, first, *o.PaidAt())
}

func TestOrder_PortionsIsACopy(t *testing.T) {
	o := NewOrder(1)
	o.AddPortion(testPortion(t))
	got := o.Portions()
	require.Len(t, got, 1)
	got[0] = nil
	assert.NotNil(t, o.Portions()[0])
}
