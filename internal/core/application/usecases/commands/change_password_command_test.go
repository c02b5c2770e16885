package commands_test

import (
	"testing"

	"lastmile/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/require"
)

func TestNewChangePasswordCommand_ValidInput(t *testing.T) {
	store := storeActor(t)
	cmd, err := commands.NewChangePasswordCommand(store, "old-secret", "new-secret")
	require.NoError(t, err)
	require.Equal(t, "old-secret", cmd.OldPassword())
	require.Equal(t, "new-secret", cmd.NewPassword())
}

func TestNewChangePasswordCommand_MissingPasswords(t *testing.T) {
	store := storeActor(t)

	_, err := commands.NewChangePasswordCommand(store, "", "new-secret")
	require.Error(t, err)

	_, err = commands.NewChangePasswordCommand(store, "old-secret", "")
	require.Error(t, err)
}

func TestChangePasswordCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := storeActor(t)
	cmd, err := commands.NewChangePasswordCommand(store, "old-secret", "new-secret")
	require.NoError(t, err)

	users := new(MockUserClient)
	users.On("ChangePassword", ctx, store.ID(), "old-secret", "new-secret").Return(nil).Once()

	h := commands.NewChangePasswordCommandHandler(users)
	require.NoError(t, h.Handle(ctx, cmd))
	users.AssertExpectations(t)
}

func TestChangePasswordCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ChangePasswordCommand{} // not constructed properly
	users := new(MockUserClient)
	h := commands.NewChangePasswordCommandHandler(users)
	require.Error(t, h.Handle(ctx, cmd))
	users.AssertNotCalled(t, "ChangePassword")
}
