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
	ErrUpdateProfileCommandIsNotConstructed = errors.New(
		"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
	)
)

// UpdateProfileCommand represents the actor editing its own profile fields.
// Empty fields are left unchanged by the server.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	update ports.ProfileUpdate

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a profile edit for the acting user. At
// least one field must carry a new value.
func NewUpdateProfileCommand(a *actor.Actor, update ports.ProfileUpdate) (UpdateProfileCommand, error) {
	if err := a.Validate(); err != nil {
		return UpdateProfileCommand{}, err
	}
	if update.Name == "" && update.Phone == "" && update.Address == "" {
		return UpdateProfileCommand{}, errs.NewValueIsRequiredError("update")
	}

	return UpdateProfileCommand{
		userID: a.ID(),
		update: update,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// UserID returns the profile owner's identifier.
func (c UpdateProfileCommand) UserID() kernel.UUID {
	return c.userID
}

// Update returns the new field values.
func (c UpdateProfileCommand) Update() ports.ProfileUpdate {
	return c.update
}

// UpdateProfileCommandHandler pushes profile edits to the server.
type UpdateProfileCommandHandler struct {
	users ports.UserClient
}

// NewUpdateProfileCommandHandler creates a handler for profile edits.
func NewUpdateProfileCommandHandler(users ports.UserClient) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{users: users}
}

// Handle applies the edit remotely and returns the merged profile.
func (h UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (*actor.Detail, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.users.UpdateProfile(ctx, cmd.UserID(), cmd.Update())
}
