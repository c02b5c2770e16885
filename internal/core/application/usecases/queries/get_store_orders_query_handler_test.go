package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
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

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
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
	customer, err := order.NewCustomer("Ana Silva", "+55 11 91234-5678", "Rua das Flores 10")
	require.NoError(t, err)
	amount, err := kernel.NewMoney(100)
	require.NoError(t, err)
	fee, err := kernel.NewMoney(12)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), store.ID(), customer, amount, fee)
	require.NoError(t, err)
	return o
}

func TestGetStoreOrdersQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := storeActor(t)
	query, err := queries.NewGetStoreOrdersQuery(store, nil)
	require.NoError(t, err)

	listed := []*order.Order{createdOrder(t, store), createdOrder(t, store)}
	client := new(MockOrderClient)
	client.On("ListForStore", ctx, store.ID(), (*int)(nil)).Return(listed, nil).Once()

	h := queries.NewGetStoreOrdersQueryHandler(client, discardLogger())
	got, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	client.AssertExpectations(t)
}

func TestGetStoreOrdersQueryHandler_Handle_DegradesToEmpty(t *testing.T) {
	ctx := t.Context()
	store := storeActor(t)
	query, err := queries.NewGetStoreOrdersQuery(store, nil)
	require.NoError(t, err)

	client := new(MockOrderClient)
	client.On("ListForStore", ctx, store.ID(), (*int)(nil)).
		Return(nil, errs.NewRemoteCallError("ListForStore", 500)).Once()

	h := queries.NewGetStoreOrdersQueryHandler(client, discardLogger())
	got, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetStoreOrdersQueryHandler_Handle_NotAuthenticatedPropagates(t *testing.T) {
	ctx := t.Context()
	store := storeActor(t)
	query, err := queries.NewGetStoreOrdersQuery(store, nil)
	require.NoError(t, err)

	client := new(MockOrderClient)
	client.On("ListForStore", ctx, store.ID(), (*int)(nil)).
		Return(nil, errs.NewNotAuthenticatedError("ListForStore")).Once()

	h := queries.NewGetStoreOrdersQueryHandler(client, discardLogger())
	_, err = h.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
}

func TestGetStoreOrdersQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	query := queries.GetStoreOrdersQuery{} // not constructed properly
	client := new(MockOrderClient)
	h := queries.NewGetStoreOrdersQueryHandler(client, discardLogger())
	_, err := h.Handle(ctx, query)
	require.Error(t, err)
	client.AssertNotCalled(t, "ListForStore")
}

func TestNewGetStoreOrdersQuery_CourierCannotList(t *testing.T) {
	courier := courierActor(t)
	_, err := queries.NewGetStoreOrdersQuery(courier, nil)
	require.Error(t, err)
}
