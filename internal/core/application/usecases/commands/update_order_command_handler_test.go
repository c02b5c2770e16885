package commands_test

import (
	"errors"
	"testing"

	"lastmile/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := storeActor(t)
	o := createdOrder(t, store)
	cmd, err := commands.NewUpdateOrderCommand(store, o, testCustomer(t), testMoney(t, 150), testMoney(t, 15))
	require.NoError(t, err)

	client := new(MockOrderClient)
	client.On("Update", ctx, o).Return(o, nil).Once()

	h := commands.NewUpdateOrderCommandHandler(client)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.InDelta(t, 150, got.Amount().Amount(), 0.001)
	assert.InDelta(t, 15, got.DeliveryFee().Amount(), 0.001)
	client.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateOrderCommand{} // not constructed properly
	client := new(MockOrderClient)
	h := commands.NewUpdateOrderCommandHandler(client)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	client.AssertNotCalled(t, "Update")
}

func TestUpdateOrderCommandHandler_Handle_RemoteError(t *testing.T) {
	ctx := t.Context()
	store := storeActor(t)
	o := createdOrder(t, store)
	cmd, err := commands.NewUpdateOrderCommand(store, o, testCustomer(t), testMoney(t, 150), testMoney(t, 15))
	require.NoError(t, err)

	client := new(MockOrderClient)
	client.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil, errors.New("remote error")).Once()

	h := commands.NewUpdateOrderCommandHandler(client)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	client.AssertExpectations(t)
}
