package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	memberID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(memberID, itemID, 3)
	require.NoError(t, err)
	assert.Equal(t, memberID, cmd.MemberID())
	assert.Equal(t, itemID, cmd.ItemID())
	assert.Equal(t, 3, cmd.Quantity())
	require.NoError(t, cmd.OrderID().Validate())
}

func TestNewPlaceOrderCommand_InvalidMemberID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewPlaceOrderCommand(invalidID, kernel.NewUUID(), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewPlaceOrderCommand_InvalidItemID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), invalidID, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewPlaceOrderCommand_InvalidQuantity(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), quantity)
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	}
}

func TestNewPlaceOrderCommand_MultipleCommandsGenerateUniqueOrderIDs(t *testing.T) {
	memberID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	cmd1, err := commands.NewPlaceOrderCommand(memberID, itemID, 1)
	require.NoError(t, err)

	cmd2, err := commands.NewPlaceOrderCommand(memberID, itemID, 1)
	require.NoError(t, err)

	assert.NotEqual(t, cmd1.OrderID(), cmd2.OrderID(), "Different commands should generate unique order IDs")
}
