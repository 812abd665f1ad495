package guard_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))

		// Nil error falls back to the default
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Shipment struct {
		pieces int
		guard  guard.ConstructorGuard
	}

	var errShipmentNotConstructed = errors.New("Shipment must be created via NewShipment")

	newShipment := func(pieces int) (Shipment, error) {
		if pieces <= 0 {
			return Shipment{}, errors.New("pieces must be positive")
		}
		return Shipment{
			pieces: pieces,
			guard:  guard.NewConstructorGuard(),
		}, nil
	}

	validateShipment := func(s Shipment) error {
		return s.guard.Validate(errShipmentNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		shipment, err := newShipment(3)

		require.NoError(t, err)
		require.NoError(t, validateShipment(shipment))
		assert.Equal(t, 3, shipment.pieces)
	})

	t.Run("zero_value_construction_fails_validation", func(t *testing.T) {
		var shipment Shipment // zero value

		err := validateShipment(shipment)

		require.Error(t, err)
		assert.Equal(t, errShipmentNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newShipment(0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pieces must be positive")
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	require.Error(t, guard.ErrDefaultConstructorGuard)
	assert.Contains(t, guard.ErrDefaultConstructorGuard.Error(), "constructor")
}

// ConstructorGuard is copied by value into every validated type; copies must
// validate independently.
func TestConstructorGuardCopySemantics(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("test error")

	guardCopy := g

	require.NoError(t, g.Validate(testError))
	require.NoError(t, guardCopy.Validate(testError))
}
