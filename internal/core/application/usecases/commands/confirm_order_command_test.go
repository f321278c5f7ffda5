package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmOrderCommand_ValidInput(t *testing.T) {
	humanID, err := order.ParseHumanID("20250731-000007")
	require.NoError(t, err)
	actorID := kernel.NewUUID()

	cmd, err := commands.NewConfirmOrderCommand(humanID, actorID)
	require.NoError(t, err)
	assert.Equal(t, humanID, cmd.HumanID())
	assert.Equal(t, actorID, cmd.ActorID())
}

func TestNewConfirmOrderCommand_InvalidInput(t *testing.T) {
	humanID, err := order.ParseHumanID("20250731-000007")
	require.NoError(t, err)

	_, err = commands.NewConfirmOrderCommand(order.HumanID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = commands.NewConfirmOrderCommand(humanID, kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
