package commands

import (
	"errors"

	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/pkg/guard"
)

var (
	ErrClaimOrderCommandIsNotConstructed = errors.New(
		"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
	)
)

// ClaimOrderCommand represents a courier's attempt to bind itself to a
// Created order. Construction checks the local view of the state machine;
// the race against other couriers is decided by the server.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a claim for the given order by the acting
// courier. Fails when the actor may not claim orders or the order is not in
// Created status in the local view.
func NewClaimOrderCommand(a *actor.Actor, o *order.Order) (ClaimOrderCommand, error) {
	if err := a.Validate(); err != nil {
		return ClaimOrderCommand{}, err
	}
	if err := a.Role().ValidateCan(actor.CapClaimOrders); err != nil {
		return ClaimOrderCommand{}, err
	}
	if err := o.Validate(); err != nil {
		return ClaimOrderCommand{}, err
	}
	if err := o.Status().ValidateAssign(); err != nil {
		return ClaimOrderCommand{}, err
	}

	return ClaimOrderCommand{
		orderID:   o.ID(),
		courierID: a.ID(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the contested order's identifier.
func (c ClaimOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the claiming courier's identifier.
func (c ClaimOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}
