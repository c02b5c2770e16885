package queries_test

import (
	"context"
	"errors"
	"testing"

	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserClient struct{ mock.Mock }

func (m *MockUserClient) Get(ctx context.Context, userID kernel.UUID) (*actor.Detail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*actor.Detail), args.Error(1)
}

func (m *MockUserClient) UpdateProfile(ctx context.Context, userID kernel.UUID, update ports.ProfileUpdate) (*actor.Detail, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*actor.Detail), args.Error(1)
}

func (m *MockUserClient) ChangePassword(ctx context.Context, userID kernel.UUID, oldPassword, newPassword string) error {
	args := m.Called(ctx, userID, oldPassword, newPassword)
	return args.Error(0)
}

func (m *MockUserClient) UpdateLocation(ctx context.Context, userID kernel.UUID, location kernel.Location) error {
	args := m.Called(ctx, userID, location)
	return args.Error(0)
}

func TestGetUserDetailQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courier := courierActor(t)
	storeID := kernel.NewUUID()
	query, err := queries.NewGetUserDetailQuery(courier, storeID)
	require.NoError(t, err)

	detail := &actor.Detail{ID: storeID, Role: actor.RoleStore, Name: "Mercado Central", Phone: "+55 11 3333-0000"}
	users := new(MockUserClient)
	users.On("Get", ctx, storeID).Return(detail, nil).Once()

	h := queries.NewGetUserDetailQueryHandler(users)
	got, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "Mercado Central", got.Name)
	users.AssertExpectations(t)
}

func TestGetUserDetailQueryHandler_Handle_RemoteError(t *testing.T) {
	ctx := t.Context()
	courier := courierActor(t)
	storeID := kernel.NewUUID()
	query, err := queries.NewGetUserDetailQuery(courier, storeID)
	require.NoError(t, err)

	users := new(MockUserClient)
	users.On("Get", ctx, storeID).Return(nil, errors.New("remote error")).Once()

	h := queries.NewGetUserDetailQueryHandler(users)
	_, err = h.Handle(ctx, query)
	require.Error(t, err)
}

func TestNewGetUserDetailQuery_InvalidUserID(t *testing.T) {
	courier := courierActor(t)
	_, err := queries.NewGetUserDetailQuery(courier, kernel.UUID{})
	require.Error(t, err)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
