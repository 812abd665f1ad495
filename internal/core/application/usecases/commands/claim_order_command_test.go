package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClaimOrderCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewClaimOrderCommand(41, 9)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, kernel.OrderID(41), cmd.OrderID())
		assert.Equal(t, kernel.ActorID(9), cmd.CourierID())
	})

	t.Run("unassigned order id is rejected", func(t *testing.T) {
		_, err := commands.NewClaimOrderCommand(0, 9)
		require.Error(t, err)
	})

	t.Run("system actor cannot claim", func(t *testing.T) {
		_, err := commands.NewClaimOrderCommand(41, kernel.SystemActorID)
		require.Error(t, err)
	})
}

func TestClaimOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.ClaimOrderCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.Equal(t, commands.ErrClaimOrderCommandIsNotConstructed, err)
}
