package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessOrdersCommand(t *testing.T) {
	t.Run("should create command with valid owner id", func(t *testing.T) {
		cmd, err := commands.NewProcessOrdersCommand(7)

		require.NoError(t, err)
		assert.Equal(t, int64(7), cmd.OwnerID())
		require.NoError(t, cmd.Validate())
	})

	t.Run("should reject non-positive owner id", func(t *testing.T) {
		_, err := commands.NewProcessOrdersCommand(0)
		require.ErrorIs(t, err, commands.ErrOwnerIDIsInvalid)

		_, err = commands.NewProcessOrdersCommand(-5)
		require.ErrorIs(t, err, commands.ErrOwnerIDIsInvalid)
	})
}

func TestProcessOrdersCommand_Validate(t *testing.T) {
	t.Run("should reject zero-value command", func(t *testing.T) {
		var cmd commands.ProcessOrdersCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrProcessOrdersCommandIsNotConstructed, err)
	})
}
