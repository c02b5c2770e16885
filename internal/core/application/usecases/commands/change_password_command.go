package commands

import (
	"context"
	"errors"

	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var (
	ErrChangePasswordCommandIsNotConstructed = errors.New(
		"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
	)
)

// ChangePasswordCommand represents replacing the account password. The old
// password is verified by the server, not locally.
type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	oldPassword string
	newPassword string

	guard guard.ConstructorGuard
}

// NewChangePasswordCommand creates a password change for the acting user.
func NewChangePasswordCommand(a *actor.Actor, oldPassword, newPassword string) (ChangePasswordCommand, error) {
	if err := a.Validate(); err != nil {
		return ChangePasswordCommand{}, err
	}
	if oldPassword == "" {
		return ChangePasswordCommand{}, errs.NewValueIsRequiredError("oldPassword")
	}
	if newPassword == "" {
		return ChangePasswordCommand{}, errs.NewValueIsRequiredError("newPassword")
	}

	return ChangePasswordCommand{
		userID:      a.ID(),
		oldPassword: oldPassword,
		newPassword: newPassword,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

// UserID returns the account owner's identifier.
func (c ChangePasswordCommand) UserID() kernel.UUID {
	return c.userID
}

// OldPassword returns the current password for server-side verification.
func (c ChangePasswordCommand) OldPassword() string {
	return c.oldPassword
}

// NewPassword returns the replacement password.
func (c ChangePasswordCommand) NewPassword() string {
	return c.newPassword
}

// ChangePasswordCommandHandler forwards the password change to the server.
type ChangePasswordCommandHandler struct {
	users ports.UserClient
}

// NewChangePasswordCommandHandler creates a handler for password changes.
func NewChangePasswordCommandHandler(users ports.UserClient) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{users: users}
}

// Handle performs the change. A wrong old password surfaces as the server's
// validation rejection.
func (h ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.users.ChangePassword(ctx, cmd.UserID(), cmd.OldPassword(), cmd.NewPassword())
}
