package queries_test

import (
	"testing"
	"time"

	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyOrder(t *testing.T, store, courier *actor.Actor, status order.Status) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Ana Silva", "+55 11 91234-5678", "Rua das Flores 10")
	require.NoError(t, err)
	amount, err := kernel.NewMoney(80)
	require.NoError(t, err)
	fee, err := kernel.NewMoney(10)
	require.NoError(t, err)
	courierID := courier.ID()
	o, err := order.RestoreOrder(kernel.NewUUID(), store.ID(), &courierID,
		customer, amount, fee, status, time.Now().Add(-2*time.Hour), time.Now())
	require.NoError(t, err)
	return o
}

func TestGetArchivedOrdersQueryHandler_Handle_KeepsOnlyTerminal(t *testing.T) {
	ctx := t.Context()
	store := storeActor(t)
	courier := courierActor(t)
	query, err := queries.NewGetArchivedOrdersQuery(courier)
	require.NoError(t, err)

	delivered := historyOrder(t, store, courier, order.Delivered)
	returned := historyOrder(t, store, courier, order.Returned)
	active := historyOrder(t, store, courier, order.Assigned)

	client := new(MockOrderClient)
	client.On("ListForCourier", ctx, courier.ID()).
		Return([]*order.Order{delivered, active, returned}, nil).Once()

	h := queries.NewGetArchivedOrdersQueryHandler(client, discardLogger())
	got, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Contains(t, got, delivered)
	assert.Contains(t, got, returned)
	assert.NotContains(t, got, active)
}

func TestGetArchivedOrdersQueryHandler_Handle_DegradesToEmpty(t *testing.T) {
	ctx := t.Context()
	courier := courierActor(t)
	query, err := queries.NewGetArchivedOrdersQuery(courier)
	require.NoError(t, err)

	client := new(MockOrderClient)
	client.On("ListForCourier", ctx, courier.ID()).
		Return(nil, errs.NewRemoteCallError("ListForCourier", 500)).Once()

	h := queries.NewGetArchivedOrdersQueryHandler(client, discardLogger())
	got, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewGetArchivedOrdersQuery_StoreHasNoArchive(t *testing.T) {
	store := storeActor(t)
	_, err := queries.NewGetArchivedOrdersQuery(store)
	require.Error(t, err)
}
