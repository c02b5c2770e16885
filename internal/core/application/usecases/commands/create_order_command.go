package commands

import (
	"errors"

	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a store's request to publish a new delivery
// order. The constructor performs the role check and field validation, so a
// constructed command is always sendable.
//
// Example:
//
//	customer, _ := order.NewCustomer("Ali", "+212600000000", "12 Rue des Fleurs")
//	cmd, err := NewCreateOrderCommand(store, customer, amount, fee)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	storeID     kernel.UUID
	customer    order.Customer
	amount      kernel.Money
	deliveryFee kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to publish a new order for the
// acting store. Fails when the actor is not permitted to create orders or
// the customer details are invalid.
func NewCreateOrderCommand(a *actor.Actor, customer order.Customer, amount, deliveryFee kernel.Money) (CreateOrderCommand, error) {
	if err := a.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := a.Role().ValidateCan(actor.CapCreateOrders); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := customer.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		storeID:     a.ID(),
		customer:    customer,
		amount:      amount,
		deliveryFee: deliveryFee,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// StoreID returns the identifier of the publishing store.
func (c CreateOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Customer returns the recipient's contact details.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Amount returns the merchandise value.
func (c CreateOrderCommand) Amount() kernel.Money {
	return c.amount
}

// DeliveryFee returns the courier's fee.
func (c CreateOrderCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}
