package httpapi_test

import (
	"testing"

	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetUser_ReturnsDetail(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	courier, _ := e.clientFor(t, "COURIER", "joao")
	_, storeID := e.clientFor(t, "STORE", "mercado")

	detail, err := courier.Get(ctx, storeID)
	require.NoError(t, err)
	assert.Equal(t, actor.RoleStore, detail.Role)
	assert.Equal(t, "mercado", detail.Name)
}

func TestClient_GetUser_UnknownID(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	courier, _ := e.clientFor(t, "COURIER", "joao")

	_, err := courier.Get(ctx, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestClient_UpdateProfile_MergesFields(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	store, storeID := e.clientFor(t, "STORE", "mercado")

	detail, err := store.UpdateProfile(ctx, storeID, ports.ProfileUpdate{Address: "Rua Nova 22"})
	require.NoError(t, err)
	assert.Equal(t, "Rua Nova 22", detail.Address)
	// Untouched fields keep their values.
	assert.Equal(t, "mercado", detail.Name)
	assert.Equal(t, "+55 11 90000-0000", detail.Phone)
}

func TestClient_ChangePassword(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	store, storeID := e.clientFor(t, "STORE", "mercado")

	require.NoError(t, store.ChangePassword(ctx, storeID, "secret", "better-secret"))

	err := store.ChangePassword(ctx, storeID, "secret", "again")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidationRejected)
}

func TestClient_UpdateLocation(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	courier, courierID := e.clientFor(t, "COURIER", "joao")

	loc, err := kernel.NewLocation(-23.55, -46.63)
	require.NoError(t, err)
	require.NoError(t, courier.UpdateLocation(ctx, courierID, loc))

	detail, err := courier.Get(ctx, courierID)
	require.NoError(t, err)
	require.NotNil(t, detail.Location)
	assert.InDelta(t, -23.55, detail.Location.Latitude(), 0.0001)
}

func TestClient_RegisterNotificationToken(t *testing.T) {
	ctx := t.Context()
	e := newEnv(t)
	courier, courierID := e.clientFor(t, "COURIER", "joao")

	require.NoError(t, courier.RegisterNotificationToken(ctx, courierID, "expo-token-1"))

	err := courier.RegisterNotificationToken(ctx, courierID, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
