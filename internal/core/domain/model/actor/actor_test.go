package actor_test

import (
	"testing"

	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("parses_wire_names", func(t *testing.T) {
		store, err := actor.RoleFromString("STORE")
		require.NoError(t, err)
		assert.Equal(t, actor.RoleStore, store)

		courier, err := actor.RoleFromString("COURIER")
		require.NoError(t, err)
		assert.Equal(t, actor.RoleCourier, courier)
	})

	t.Run("rejects_unknown_names", func(t *testing.T) {
		_, err := actor.RoleFromString("ADMIN")
		require.Error(t, err)
	})
}

func TestRole_Can(t *testing.T) {
	t.Run("store_capabilities", func(t *testing.T) {
		assert.True(t, actor.RoleStore.Can(actor.CapCreateOrders))
		assert.True(t, actor.RoleStore.Can(actor.CapEditOrders))
		assert.True(t, actor.RoleStore.Can(actor.CapDeleteOrders))
		assert.False(t, actor.RoleStore.Can(actor.CapClaimOrders))
		assert.False(t, actor.RoleStore.Can(actor.CapCompleteOrders))
		assert.False(t, actor.RoleStore.Can(actor.CapPushLocation))
	})

	t.Run("courier_capabilities", func(t *testing.T) {
		assert.True(t, actor.RoleCourier.Can(actor.CapClaimOrders))
		assert.True(t, actor.RoleCourier.Can(actor.CapCompleteOrders))
		assert.True(t, actor.RoleCourier.Can(actor.CapPushLocation))
		assert.False(t, actor.RoleCourier.Can(actor.CapCreateOrders))
		assert.False(t, actor.RoleCourier.Can(actor.CapEditOrders))
		assert.False(t, actor.RoleCourier.Can(actor.CapDeleteOrders))
	})

	t.Run("unknown_role_can_do_nothing", func(t *testing.T) {
		assert.False(t, actor.RoleUnknown.Can(actor.CapClaimOrders))
		require.Error(t, actor.RoleUnknown.ValidateCan(actor.CapClaimOrders))
	})
}

func TestNewActor(t *testing.T) {
	t.Run("creates_courier_with_location", func(t *testing.T) {
		loc, err := kernel.NewLocation(33.58, -7.6)
		require.NoError(t, err)

		a, err := actor.NewActor(kernel.NewUUID(), actor.RoleCourier, "Yassine", "+212600000001", &loc)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, actor.RoleCourier, a.Role())
		require.NotNil(t, a.Location())
		assert.True(t, a.Location().IsEqual(loc))
	})

	t.Run("location_is_optional", func(t *testing.T) {
		a, err := actor.NewActor(kernel.NewUUID(), actor.RoleStore, "Epicerie du Coin", "", nil)

		require.NoError(t, err)
		assert.Nil(t, a.Location())
	})

	t.Run("rejects_missing_name", func(t *testing.T) {
		_, err := actor.NewActor(kernel.NewUUID(), actor.RoleStore, "", "", nil)
		require.Error(t, err)
	})

	t.Run("rejects_invalid_role", func(t *testing.T) {
		_, err := actor.NewActor(kernel.NewUUID(), actor.RoleUnknown, "X", "", nil)
		require.Error(t, err)
	})

	t.Run("rejects_unconstructed_location", func(t *testing.T) {
		var loc kernel.Location
		_, err := actor.NewActor(kernel.NewUUID(), actor.RoleCourier, "Yassine", "", &loc)
		require.Error(t, err)
	})
}

func TestActor_Validate(t *testing.T) {
	var a actor.Actor
	require.Error(t, a.Validate())
	require.Error(t, (*actor.Actor)(nil).Validate())
}
