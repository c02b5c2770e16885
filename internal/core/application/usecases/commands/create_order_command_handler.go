package commands

import (
	"context"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/core/ports"
)

// CreateOrderCommandHandler publishes new orders through the remote API.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(client)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created carries the server-generated id and timestamps
type CreateOrderCommandHandler struct {
	orders ports.OrderClient
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(orders ports.OrderClient) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{orders: orders}
}

// Handle builds the order aggregate in Created status and persists it
// remotely. Returns the server's authoritative copy.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), cmd.StoreID(), cmd.Customer(), cmd.Amount(), cmd.DeliveryFee())
	if err != nil {
		return nil, err
	}

	return h.orders.Create(ctx, o)
}
