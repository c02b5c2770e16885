package commands

import (
	"errors"
	"fmt"

	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var (
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
)

// CompleteOrderCommand represents the assigned courier finishing an order:
// Delivered on success, Returned when the merchandise goes back to the store.
// Construction enforces the whole contract locally: only the assigned courier,
// only from Assigned, only into a terminal state.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a completion for the given order. The
// target must be Delivered or Returned and the acting courier must be the one
// the order is assigned to.
func NewCompleteOrderCommand(a *actor.Actor, o *order.Order, target order.Status) (CompleteOrderCommand, error) {
	if err := a.Validate(); err != nil {
		return CompleteOrderCommand{}, err
	}
	if err := a.Role().ValidateCan(actor.CapCompleteOrders); err != nil {
		return CompleteOrderCommand{}, err
	}
	if err := o.Validate(); err != nil {
		return CompleteOrderCommand{}, err
	}

	if o.Courier() == nil || !o.Courier().IsEqual(a.ID()) {
		return CompleteOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("courierId",
			fmt.Errorf("order %s is not assigned to courier %s", o.ID(), a.ID()))
	}

	// The status machine rejects completion from anything but Assigned.
	var err error
	switch target {
	case order.Delivered:
		_, err = o.Status().Deliver()
	case order.Returned:
		_, err = o.Status().Return()
	default:
		err = errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a terminal status", target))
	}
	if err != nil {
		return CompleteOrderCommand{}, err
	}

	return CompleteOrderCommand{
		orderID: o.ID(),
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the order being completed.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the terminal status to set.
func (c CompleteOrderCommand) Target() order.Status {
	return c.target
}
