package commands_test

import (
	"testing"
	"time"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCustomer(t *testing.T) order.Customer {
	t.Helper()
	c, err := order.NewCustomer("Ana Silva", "+55 11 91234-5678", "Rua das Flores 10")
	require.NoError(t, err)
	return c
}

func testMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func storeActor(t *testing.T) *actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), actor.RoleStore, "Mercado Central", "+55 11 3333-0000", nil)
	require.NoError(t, err)
	return a
}

func courierActor(t *testing.T) *actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), actor.RoleCourier, "Joao Souza", "+55 11 98888-0000", nil)
	require.NoError(t, err)
	return a
}

func createdOrder(t *testing.T, store *actor.Actor) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), store.ID(), testCustomer(t), testMoney(t, 100), testMoney(t, 12))
	require.NoError(t, err)
	return o
}

func assignedOrder(t *testing.T, store, courier *actor.Actor) *order.Order {
	t.Helper()
	courierID := courier.ID()
	o, err := order.RestoreOrder(kernel.NewUUID(), store.ID(), &courierID,
		testCustomer(t), testMoney(t, 100), testMoney(t, 12),
		order.Assigned, time.Now().Add(-time.Hour), time.Now())
	require.NoError(t, err)
	return o
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	store := storeActor(t)
	customer := testCustomer(t)
	cmd, err := commands.NewCreateOrderCommand(store, customer, testMoney(t, 100), testMoney(t, 12))
	require.NoError(t, err)
	assert.True(t, cmd.StoreID().IsEqual(store.ID()))
	assert.Equal(t, customer, cmd.Customer())
	assert.InDelta(t, 100, cmd.Amount().Amount(), 0.001)
	assert.InDelta(t, 12, cmd.DeliveryFee().Amount(), 0.001)
}

func TestNewCreateOrderCommand_CourierCannotCreate(t *testing.T) {
	courier := courierActor(t)
	_, err := commands.NewCreateOrderCommand(courier, testCustomer(t), testMoney(t, 100), testMoney(t, 12))
	require.Error(t, err)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
