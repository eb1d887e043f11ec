package commands_test

import (
	"testing"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignSessionCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		canteenID := kernel.NewUUID()

		cmd, err := commands.NewAssignSessionCommand(canteenID, testSessionTs)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.CanteenID().IsEqual(canteenID))
		assert.Equal(t, testSessionTs, cmd.SessionTs())
	})

	t.Run("should fail with empty canteen id", func(t *testing.T) {
		_, err := commands.NewAssignSessionCommand(kernel.UUID{}, testSessionTs)

		require.Error(t, err)
	})

	t.Run("should fail with non-positive session key", func(t *testing.T) {
		_, err := commands.NewAssignSessionCommand(kernel.NewUUID(), 0)
		require.ErrorIs(t, err, commands.ErrSessionTsIsInvalid)

		_, err = commands.NewAssignSessionCommand(kernel.NewUUID(), -1)
		require.ErrorIs(t, err, commands.ErrSessionTsIsInvalid)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		cmd := commands.AssignSessionCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrAssignSessionCommandIsNotConstructed)
	})
}
