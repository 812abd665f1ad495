package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("valid address", func(t *testing.T) {
		addr, err := kernel.NewAddress("12 Harbor Rd", "Rotterdam")

		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.Equal(t, "12 Harbor Rd", addr.Street())
		assert.Equal(t, "Rotterdam", addr.City())
		assert.Equal(t, "12 Harbor Rd, Rotterdam", addr.String())
	})

	t.Run("missing street", func(t *testing.T) {
		_, err := kernel.NewAddress("", "Rotterdam")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing city", func(t *testing.T) {
		_, err := kernel.NewAddress("12 Harbor Rd", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing both reports both", func(t *testing.T) {
		_, err := kernel.NewAddress("", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "city")
	})
}

func TestAddress_IsEqual(t *testing.T) {
	a, err := kernel.NewAddress("12 Harbor Rd", "Rotterdam")
	require.NoError(t, err)
	b, err := kernel.NewAddress("12 Harbor Rd", "Rotterdam")
	require.NoError(t, err)
	c, err := kernel.NewAddress("1 Dock St", "Rotterdam")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestAddress_ZeroValueFailsValidation(t *testing.T) {
	var addr kernel.Address

	require.Error(t, addr.Validate())
}

func TestNewContact(t *testing.T) {
	t.Run("valid contact", func(t *testing.T) {
		contact, err := kernel.NewContact("Ada", "+31-6-1234")

		require.NoError(t, err)
		require.NoError(t, contact.Validate())
		assert.Equal(t, "Ada", contact.Name())
		assert.Equal(t, "+31-6-1234", contact.Phone())
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := kernel.NewContact("", "+31-6-1234")
		require.Error(t, err)
	})

	t.Run("missing phone", func(t *testing.T) {
		_, err := kernel.NewContact("Ada", "")
		require.Error(t, err)
	})
}
