package commands

import (
	"context"
	"errors"

	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/guard"
)

var (
	ErrRegisterPushTokenCommandIsNotConstructed = errors.New(
		"RegisterPushTokenCommand must be created via NewRegisterPushTokenCommand constructor",
	)
)

// RegisterPushTokenCommand represents forwarding the device's notification
// token to the server after login.
type RegisterPushTokenCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterPushTokenCommand creates a push-token registration for the
// acting user.
func NewRegisterPushTokenCommand(a *actor.Actor) (RegisterPushTokenCommand, error) {
	if err := a.Validate(); err != nil {
		return RegisterPushTokenCommand{}, err
	}

	return RegisterPushTokenCommand{
		userID: a.ID(),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterPushTokenCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPushTokenCommandIsNotConstructed)
}

// UserID returns the user the token belongs to.
func (c RegisterPushTokenCommand) UserID() kernel.UUID {
	return c.userID
}

// RegisterPushTokenCommandHandler reads the device token and registers it.
type RegisterPushTokenCommandHandler struct {
	auth   ports.AuthClient
	tokens ports.PushTokenProvider
}

// NewRegisterPushTokenCommandHandler creates a handler for push-token
// registration.
func NewRegisterPushTokenCommandHandler(auth ports.AuthClient, tokens ports.PushTokenProvider) RegisterPushTokenCommandHandler {
	return RegisterPushTokenCommandHandler{auth: auth, tokens: tokens}
}

// Handle registers the device token. A platform without one to offer makes
// the call a no-op.
func (h RegisterPushTokenCommandHandler) Handle(ctx context.Context, cmd RegisterPushTokenCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	token, err := h.tokens.PushToken(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	return h.auth.RegisterNotificationToken(ctx, cmd.UserID(), token)
}
