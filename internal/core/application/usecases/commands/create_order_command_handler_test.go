package commands_test

import (
	"context"
	"errors"
	"testing"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderClient struct{ mock.Mock }

func (m *MockOrderClient) ListForStore(ctx context.Context, storeID kernel.UUID, windowHours *int) ([]*order.Order, error) {
	args := m.Called(ctx, storeID, windowHours)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderClient) ListAvailable(ctx context.Context, courierID kernel.UUID, windowHours int, maxDistanceKm float64) ([]*order.Order, error) {
	args := m.Called(ctx, courierID, windowHours, maxDistanceKm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderClient) ListAssigned(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderClient) ListForCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderClient) Create(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderClient) Update(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderClient) Delete(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderClient) Claim(ctx context.Context, orderID, courierID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, orderID, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderClient) SetStatus(ctx context.Context, orderID kernel.UUID, status order.Status) (*order.Order, error) {
	args := m.Called(ctx, orderID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := storeActor(t)
	cmd, err := commands.NewCreateOrderCommand(store, testCustomer(t), testMoney(t, 100), testMoney(t, 12))
	require.NoError(t, err)

	serverCopy := createdOrder(t, store)
	client := new(MockOrderClient)
	client.On("Create", ctx, mock.AnythingOfType("*order.Order")).Return(serverCopy, nil).Once()

	h := commands.NewCreateOrderCommandHandler(client)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Same(t, serverCopy, created)
	client.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	client := new(MockOrderClient)
	h := commands.NewCreateOrderCommandHandler(client)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	client.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_RemoteError(t *testing.T) {
	ctx := t.Context()
	store := storeActor(t)
	cmd, err := commands.NewCreateOrderCommand(store, testCustomer(t), testMoney(t, 100), testMoney(t, 12))
	require.NoError(t, err)

	client := new(MockOrderClient)
	client.On("Create", ctx, mock.AnythingOfType("*order.Order")).Return(nil, errors.New("remote error")).Once()

	h := commands.NewCreateOrderCommandHandler(client)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	client.AssertExpectations(t)
}
