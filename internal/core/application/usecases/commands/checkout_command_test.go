package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutCommand_ValidInput(t *testing.T) {
	userID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(userID)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, userID, cmd.UserID())
}

func TestNewCheckoutCommand_InvalidUserID(t *testing.T) {
	_, err := commands.NewCheckoutCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCheckoutCommand_NotConstructed(t *testing.T) {
	var cmd commands.CheckoutCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCheckoutCommandIsNotConstructed)
}
