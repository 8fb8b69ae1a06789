package commands_test

import (
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T) kernel.LatLong {
	t.Helper()
	location, err := kernel.NewLatLong(51.5072, -0.1276)
	require.NoError(t, err)
	return location
}

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	location := mustLocation(t)

	cmd, err := commands.NewPlaceOrderCommand(id, " user-1 ", " 221B Baker St ", location)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "user-1", cmd.UserID())
	assert.Equal(t, "221B Baker St", cmd.Address())
	assert.Equal(t, location, cmd.DeliveryLocation())
}

func TestNewPlaceOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.UUID{}, "user-1", "", mustLocation(t))

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewPlaceOrderCommand_MissingUser(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), "   ", "", mustLocation(t))

	require.ErrorIs(t, err, commands.ErrUserIDIsRequired)
}

func TestNewPlaceOrderCommand_MissingLocation(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), "user-1", "", kernel.LatLong{})

	require.ErrorIs(t, err, kernel.ErrLatLongIsNotConstructed)
}

func TestNewPlaceOrderCommand_JoinsErrors(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.UUID{}, "", "", kernel.LatLong{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, commands.ErrUserIDIsRequired)
	require.ErrorIs(t, err, kernel.ErrLatLongIsNotConstructed)
}

func TestPlaceOrderCommand_ZeroValueIsInvalid(t *testing.T) {
	var cmd commands.PlaceOrderCommand

	assert.Equal(t, commands.ErrPlaceOrderCommandIsNotConstructed, cmd.Validate())
}
