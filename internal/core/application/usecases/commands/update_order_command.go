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
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a store editing one of its own orders.
// Terminal orders and orders of other stores are rejected at construction.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	order       *order.Order
	customer    order.Customer
	amount      kernel.Money
	deliveryFee kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates an edit of the given order with the new
// customer, amount and delivery fee values.
func NewUpdateOrderCommand(a *actor.Actor, o *order.Order,
	customer order.Customer, amount, deliveryFee kernel.Money) (UpdateOrderCommand, error) {
	if err := a.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}
	if err := a.Role().ValidateCan(actor.CapEditOrders); err != nil {
		return UpdateOrderCommand{}, err
	}
	if err := o.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	if !o.StoreID().IsEqual(a.ID()) {
		return UpdateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("storeId",
			fmt.Errorf("order %s does not belong to store %s", o.ID(), a.ID()))
	}

	if err := o.Status().ValidateEdit(); err != nil {
		return UpdateOrderCommand{}, err
	}
	if err := customer.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		order:       o,
		customer:    customer,
		amount:      amount,
		deliveryFee: deliveryFee,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// Order returns the order being edited.
func (c UpdateOrderCommand) Order() *order.Order {
	return c.order
}

// Customer returns the new customer data.
func (c UpdateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Amount returns the new order amount.
func (c UpdateOrderCommand) Amount() kernel.Money {
	return c.amount
}

// DeliveryFee returns the new delivery fee.
func (c UpdateOrderCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}
