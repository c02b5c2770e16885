package commands_test

import (
	"testing"
	"time"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand_ValidInput(t *testing.T) {
	store := storeActor(t)
	o := createdOrder(t, store)
	customer := testCustomer(t)

	cmd, err := commands.NewUpdateOrderCommand(store, o, customer, testMoney(t, 150), testMoney(t, 15))
	require.NoError(t, err)
	assert.Same(t, o, cmd.Order())
	assert.Equal(t, customer, cmd.Customer())
}

func TestNewUpdateOrderCommand_OtherStoresOrder(t *testing.T) {
	owner := storeActor(t)
	intruder := storeActor(t)
	o := createdOrder(t, owner)

	_, err := commands.NewUpdateOrderCommand(intruder, o, testCustomer(t), testMoney(t, 150), testMoney(t, 15))
	require.Error(t, err)
}

func TestNewUpdateOrderCommand_TerminalOrder(t *testing.T) {
	store := storeActor(t)
	courier := courierActor(t)
	courierID := courier.ID()
	delivered, err := order.RestoreOrder(kernel.NewUUID(), store.ID(), &courierID,
		testCustomer(t), testMoney(t, 100), testMoney(t, 12),
		order.Delivered, time.Now().Add(-time.Hour), time.Now())
	require.NoError(t, err)

	_, err = commands.NewUpdateOrderCommand(store, delivered, testCustomer(t), testMoney(t, 150), testMoney(t, 15))
	require.Error(t, err)
}

func TestNewUpdateOrderCommand_CourierCannotEdit(t *testing.T) {
	store := storeActor(t)
	courier := courierActor(t)
	o := createdOrder(t, store)

	_, err := commands.NewUpdateOrderCommand(courier, o, testCustomer(t), testMoney(t, 150), testMoney(t, 15))
	require.Error(t, err)
}

func TestUpdateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.UpdateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateOrderCommandIsNotConstructed)
}
