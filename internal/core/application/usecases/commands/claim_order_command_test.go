package commands_test

import (
	"testing"

	"lastmile/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClaimOrderCommand_ValidInput(t *testing.T) {
	store := storeActor(t)
	courier := courierActor(t)
	o := createdOrder(t, store)

	cmd, err := commands.NewClaimOrderCommand(courier, o)
	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(o.ID()))
	assert.True(t, cmd.CourierID().IsEqual(courier.ID()))
}

func TestNewClaimOrderCommand_StoreCannotClaim(t *testing.T) {
	store := storeActor(t)
	o := createdOrder(t, store)

	_, err := commands.NewClaimOrderCommand(store, o)
	require.Error(t, err)
}

func TestNewClaimOrderCommand_AlreadyAssigned(t *testing.T) {
	store := storeActor(t)
	first := courierActor(t)
	second := courierActor(t)
	o := assignedOrder(t, store, first)

	_, err := commands.NewClaimOrderCommand(second, o)
	require.Error(t, err)
}

func TestClaimOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.ClaimOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrClaimOrderCommandIsNotConstructed)
}
