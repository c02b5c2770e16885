package commands_test

import (
	"context"
	"errors"
	"testing"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/ports"

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

type MockAuthClient struct{ mock.Mock }

func (m *MockAuthClient) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthClient) Me(ctx context.Context) (*actor.Actor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*actor.Actor), args.Error(1)
}

func (m *MockAuthClient) RegisterNotificationToken(ctx context.Context, userID kernel.UUID, notificationToken string) error {
	args := m.Called(ctx, userID, notificationToken)
	return args.Error(0)
}

type MockLocationProvider struct{ mock.Mock }

func (m *MockLocationProvider) CurrentLocation(ctx context.Context) (kernel.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.Location), args.Error(1)
}

type MockPushTokenProvider struct{ mock.Mock }

func (m *MockPushTokenProvider) PushToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func TestNewPushLocationCommand_StoreCannotPush(t *testing.T) {
	store := storeActor(t)
	_, err := commands.NewPushLocationCommand(store)
	require.Error(t, err)
}

func TestPushLocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courier := courierActor(t)
	cmd, err := commands.NewPushLocationCommand(courier)
	require.NoError(t, err)

	loc, err := kernel.NewLocation(-23.55, -46.63)
	require.NoError(t, err)

	users := new(MockUserClient)
	gps := new(MockLocationProvider)
	mock.InOrder(
		gps.On("CurrentLocation", ctx).Return(loc, nil).Once(),
		users.On("UpdateLocation", ctx, courier.ID(), loc).Return(nil).Once(),
	)

	h := commands.NewPushLocationCommandHandler(users, gps)
	require.NoError(t, h.Handle(ctx, cmd))
	users.AssertExpectations(t)
	gps.AssertExpectations(t)
}

func TestPushLocationCommandHandler_Handle_NoFix(t *testing.T) {
	ctx := t.Context()
	courier := courierActor(t)
	cmd, err := commands.NewPushLocationCommand(courier)
	require.NoError(t, err)

	users := new(MockUserClient)
	gps := new(MockLocationProvider)
	gps.On("CurrentLocation", ctx).Return(kernel.Location{}, errors.New("no gps fix")).Once()

	h := commands.NewPushLocationCommandHandler(users, gps)
	require.Error(t, h.Handle(ctx, cmd))
	users.AssertNotCalled(t, "UpdateLocation")
}

func TestPushLocationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PushLocationCommand{} // not constructed properly
	users := new(MockUserClient)
	gps := new(MockLocationProvider)
	h := commands.NewPushLocationCommandHandler(users, gps)
	require.Error(t, h.Handle(ctx, cmd))
	gps.AssertNotCalled(t, "CurrentLocation")
}
