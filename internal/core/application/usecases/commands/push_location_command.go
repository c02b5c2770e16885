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
	ErrPushLocationCommandIsNotConstructed = errors.New(
		"PushLocationCommand must be created via NewPushLocationCommand constructor",
	)
)

// PushLocationCommand represents publishing the courier's current device
// position to the server, which uses it to rank nearby orders.
type PushLocationCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPushLocationCommand creates a location push for the acting courier.
func NewPushLocationCommand(a *actor.Actor) (PushLocationCommand, error) {
	if err := a.Validate(); err != nil {
		return PushLocationCommand{}, err
	}
	if err := a.Role().ValidateCan(actor.CapPushLocation); err != nil {
		return PushLocationCommand{}, err
	}

	return PushLocationCommand{
		courierID: a.ID(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PushLocationCommand) Validate() error {
	return c.guard.Validate(ErrPushLocationCommandIsNotConstructed)
}

// CourierID returns the courier whose position is published.
func (c PushLocationCommand) CourierID() kernel.UUID {
	return c.courierID
}

// PushLocationCommandHandler reads the device position and forwards it.
type PushLocationCommandHandler struct {
	users    ports.UserClient
	location ports.LocationProvider
}

// NewPushLocationCommandHandler creates a handler for location pushes.
func NewPushLocationCommandHandler(users ports.UserClient, location ports.LocationProvider) PushLocationCommandHandler {
	return PushLocationCommandHandler{users: users, location: location}
}

// Handle samples the current position and publishes it. A position the
// provider cannot produce is an error, not a silent skip.
func (h PushLocationCommandHandler) Handle(ctx context.Context, cmd PushLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	loc, err := h.location.CurrentLocation(ctx)
	if err != nil {
		return err
	}

	return h.users.UpdateLocation(ctx, cmd.CourierID(), loc)
}
