package order_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderParts(t *testing.T) (kernel.Address, kernel.Address, kernel.Contact, kernel.Window) {
	t.Helper()

	pickup, err := kernel.NewAddress("12 Harbor Rd", "Rotterdam")
	require.NoError(t, err)
	dropoff, err := kernel.NewAddress("4 Mill Ln", "Delft")
	require.NoError(t, err)
	contact, err := kernel.NewContact("J. Visser", "+31 6 1234 5678")
	require.NoError(t, err)
	window, err := kernel.NewWindow(
		time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	return pickup, dropoff, contact, window
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	pickup, dropoff, contact, window := validOrderParts(t)
	o, err := order.NewOrder(7, pickup, dropoff, contact, 2, 4.5, window)
	require.NoError(t, err)

	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("valid order starts pending and unowned", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Courier())
		assert.True(t, o.ID().IsZero())
		require.NoError(t, o.TrackingID().Validate())
		assert.Equal(t, kernel.ActorID(7), o.CustomerID())
		assert.Equal(t, 2, o.Pieces())
		assert.InEpsilon(t, 4.5, o.WeightKg(), 1e-9)
	})

	t.Run("each order gets a distinct tracking reference", func(t *testing.T) {
		a := newTestOrder(t)
		b := newTestOrder(t)

		assert.False(t, a.TrackingID().IsEqual(b.TrackingID()))
	})

	t.Run("invalid fields are rejected", func(t *testing.T) {
		pickup, dropoff, contact, window := validOrderParts(t)

		_, err := order.NewOrder(0, pickup, dropoff, contact, 2, 4.5, window)
		require.Error(t, err)

		_, err = order.NewOrder(7, kernel.Address{}, dropoff, contact, 2, 4.5, window)
		require.Error(t, err)

		_, err = order.NewOrder(7, pickup, dropoff, contact, 0, 4.5, window)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pieces")

		_, err = order.NewOrder(7, pickup, dropoff, contact, 2, -1, window)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "weightKg")

		_, err = order.NewOrder(7, pickup, dropoff, contact, 2, 4.5, kernel.Window{})
		require.Error(t, err)
	})
}

func TestOrder_AssignID(t *testing.T) {
	t.Run("id is assigned exactly once", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AssignID(41))
		assert.Equal(t, kernel.OrderID(41), o.ID())

		err := o.AssignID(42)
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIDAlreadyAssigned)
		assert.Equal(t, kernel.OrderID(41), o.ID())
	})

	t.Run("invalid id is rejected", func(t *testing.T) {
		o := newTestOrder(t)

		require.Error(t, o.AssignID(0))
		assert.True(t, o.ID().IsZero())
	})
}

func TestOrder_Claim(t *testing.T) {
	t.Run("pending unowned order is claimable", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Claim(9))

		assert.Equal(t, order.EnRoutePickup, o.Status())
		require.NotNil(t, o.Courier())
		assert.Equal(t, kernel.ActorID(9), *o.Courier())
		assert.True(t, o.IsOwnedBy(9))
		assert.False(t, o.IsOwnedBy(10))
	})

	t.Run("second claim fails with already claimed", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Claim(9))

		err := o.Claim(10)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAlreadyClaimed)
		// Ownership and status are untouched
		assert.Equal(t, kernel.ActorID(9), *o.Courier())
		assert.Equal(t, order.EnRoutePickup, o.Status())
	})

	t.Run("re-claim by the owner also fails", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Claim(9))

		require.ErrorIs(t, o.Claim(9), errs.ErrAlreadyClaimed)
	})

	t.Run("invalid courier id is rejected", func(t *testing.T) {
		o := newTestOrder(t)

		require.Error(t, o.Claim(0))
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Advance(t *testing.T) {
	t.Run("owner walks the full lifecycle", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Claim(9))

		require.NoError(t, o.Advance(9, order.PickedUp))
		assert.Equal(t, order.PickedUp, o.Status())

		require.NoError(t, o.Advance(9, order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("non-owner is unauthorized", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Claim(9))

		err := o.Advance(10, order.PickedUp)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Equal(t, order.EnRoutePickup, o.Status())
	})

	t.Run("skipping a state is an invalid transition", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Claim(9))

		err := o.Advance(9, order.Delivered)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("advancing out of the terminal state fails", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Claim(9))
		require.NoError(t, o.Advance(9, order.PickedUp))
		require.NoError(t, o.Advance(9, order.Delivered))

		require.ErrorIs(t, o.Advance(9, order.Delivered), errs.ErrInvalidTransition)
	})

	t.Run("claim cannot happen through advance", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Advance(9, order.EnRoutePickup)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, o.Courier())
	})
}

func TestRestoreOrder(t *testing.T) {
	pickup, dropoff, contact, window := validOrderParts(t)
	trackingID := kernel.NewTrackingID()
	courier := kernel.ActorID(9)

	t.Run("restores a claimed order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			41, trackingID, 7, &courier, order.PickedUp,
			pickup, dropoff, contact, 2, 4.5, window,
		)

		require.NoError(t, err)
		assert.Equal(t, kernel.OrderID(41), o.ID())
		assert.True(t, trackingID.IsEqual(o.TrackingID()))
		assert.Equal(t, order.PickedUp, o.Status())
		assert.True(t, o.IsOwnedBy(9))
	})

	t.Run("restores a pending order without courier", func(t *testing.T) {
		o, err := order.RestoreOrder(
			41, trackingID, 7, nil, order.Pending,
			pickup, dropoff, contact, 2, 4.5, window,
		)

		require.NoError(t, err)
		assert.Nil(t, o.Courier())
	})

	t.Run("pending order with courier violates the ownership invariant", func(t *testing.T) {
		_, err := order.RestoreOrder(
			41, trackingID, 7, &courier, order.Pending,
			pickup, dropoff, contact, 2, 4.5, window,
		)

		require.Error(t, err)
	})

	t.Run("claimed order without courier violates the ownership invariant", func(t *testing.T) {
		_, err := order.RestoreOrder(
			41, trackingID, 7, nil, order.EnRoutePickup,
			pickup, dropoff, contact, 2, 4.5, window,
		)

		require.Error(t, err)
	})

	t.Run("unassigned id is rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(
			0, trackingID, 7, nil, order.Pending,
			pickup, dropoff, contact, 2, 4.5, window,
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	var notConstructed order.Order

	err := notConstructed.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
}

func TestOrder_IsEqual(t *testing.T) {
	a := newTestOrder(t)
	b := newTestOrder(t)

	// Unpersisted orders are never equal
	assert.False(t, a.IsEqual(b))

	require.NoError(t, a.AssignID(41))
	require.NoError(t, b.AssignID(41))
	assert.True(t, a.IsEqual(b))

	assert.False(t, a.IsEqual(nil))
}
