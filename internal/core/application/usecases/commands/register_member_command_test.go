package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCommandAddress(t testing.TB) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("1 Main St", "Springfield", "12345")
	require.NoError(t, err)
	return address
}

func TestNewRegisterMemberCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	address := testCommandAddress(t)

	cmd, err := commands.NewRegisterMemberCommand(id, "Alice", address)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.MemberID())
	assert.Equal(t, "Alice", cmd.Name())
	assert.Equal(t, address, cmd.Address())
}

func TestNewRegisterMemberCommand_EmptyName(t *testing.T) {
	_, err := commands.NewRegisterMemberCommand(kernel.NewUUID(), "", testCommandAddress(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrMemberNameIsRequired)
}

func TestNewRegisterMemberCommand_InvalidMemberID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewRegisterMemberCommand(invalidID, "Alice", testCommandAddress(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewRegisterMemberCommand_InvalidAddress(t *testing.T) {
	var invalidAddress kernel.Address // zero value, should trigger validation error
	_, err := commands.NewRegisterMemberCommand(kernel.NewUUID(), "Alice", invalidAddress)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)
}

func TestRegisterMemberCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.RegisterMemberCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRegisterMemberCommandIsNotConstructed)
}
