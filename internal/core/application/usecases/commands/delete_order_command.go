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
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// DeleteOrderCommand represents a store removing one of its own orders.
// Delivered and Returned orders are part of the archive and cannot be
// deleted.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a deletion of the given order.
func NewDeleteOrderCommand(a *actor.Actor, o *order.Order) (DeleteOrderCommand, error) {
	if err := a.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}
	if err := a.Role().ValidateCan(actor.CapDeleteOrders); err != nil {
		return DeleteOrderCommand{}, err
	}
	if err := o.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}

	if !o.StoreID().IsEqual(a.ID()) {
		return DeleteOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("storeId",
			fmt.Errorf("order %s does not belong to store %s", o.ID(), a.ID()))
	}

	if err := o.Status().ValidateEdit(); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		orderID: o.ID(),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the order being deleted.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
