package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paidableOrder(t *testing.T, number uint64) *Order {
	t.Helper()
	o := NewOrder(number)
	o.AddPortion(testPortion(t)) // 210 each
	return o
}

func TestShift_Lifecycle(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	s := NewShift(1)
	assert.Equal(t, ShiftUnopened, s.State())
	assert.False(t, s.IsOpen())

	// Closing before opening is a state violation.
	require.ErrorIs(t, s.Close(now), ErrShiftNotOpen)

	require.NoError(t, s.Open(now))
	assert.Equal(t, ShiftOpen, s.State())
	require.NotNil(t, s.StartedAt())
	assert.Equal(t, now, *s.StartedAt())

	// Opening an already open shift is a no-op and must not re-stamp
	// the start time.
	require.NoError(t, s.Open(now.Add(time.Hour)))
	assert.Equal(t, now, *s.StartedAt())

	end := now.Add(8 * time.Hour)
	require.NoError(t, s.Close(end))
	assert.Equal(t, ShiftClosed, s.State())
	require.NotNil(t, s.EndedAt())
	assert.Equal(t, end, *s.EndedAt())

	// Closed is terminal: no reopen, no second close.
	require.ErrorIs(t, s.Open(end.Add(time.Minute)), ErrShiftClosed)
	require.ErrorIs(t, s.Close(end.Add(time.Minute)), ErrShiftNotOpen)
}

func TestShift_AddOrderPays(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	s := NewShift(1)
	require.NoError(t, s.Open(now))

	o := paidableOrder(t, 1)
	paidAt := now.Add(10 * time.Minute)
	require.NoError(t, s.AddOrder(o, paidAt))
	assert.True(t, o.Paid())
	require.NotNil(t, o.PaidAt())
	assert.Equal(t, paidAt, *o.PaidAt())
	assert.Equal(t, 210, s.Revenue())
}

func TestShift_AddOrderRejections(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	// Unopened shift takes no orders.
	s := NewShift(1)
	require.ErrorIs(t, s.AddOrder(paidableOrder(t, 1), now), ErrShiftNotOpen)

	// An empty order cannot be paid, and the failed add leaves the
	// shift untouched.
	require.NoError(t, s.Open(now))
	require.ErrorIs(t, s.AddOrder(NewOrder(2), now), ErrEmptyOrder)
	assert.Empty(t, s.Orders())
	assert.Equal(t, 0, s.Revenue())

	// An order that was somehow already paid cannot be added again, so
	// revenue can never double-count it.
	o := paidableOrder(t, 3)
	require.NoError(t, o.Pay(now))
	require.ErrorIs(t, s.AddOrder(o, now), ErrOrderAlreadyPaid)
	assert.Empty(t, s.Orders())

	// Closed shift takes no orders either.
	require.NoError(t, s.Close(now.Add(time.Hour)))
	require.ErrorIs(t, s.AddOrder(paidableOrder(t, 4), now), ErrShiftNotOpen)
}

func TestShift_Revenue(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	s := NewShift(1)
	assert.Equal(t, 0, s.Revenue(), "empty shift reads zero in any state")

	require.NoError(t, s.Open(now))
	require.NoError(t, s.AddOrder(paidableOrder(t, 1), now))
	require.NoError(t, s.AddOrder(paidableOrder(t, 2), now))
	assert.Equal(t, 420, s.Revenue())

	// Revenue stays readable and unchanged after close.
	require.NoError(t, s.Close(now.Add(time.Hour)))
	assert.Equal(t, 420, s.Revenue())
}

func TestSequence(t *testing.T) {
	var seq Sequence
	assert.Equal(t, uint64(1), seq.Next())
	assert.Equal(t, uint64(2), seq.Next())
	assert.Equal(t, uint64(3), seq.Next())

	// Independent sequences do not share state.
	var other Sequence
	assert.Equal(t, uint64(1), other.Next())
}
