package commands

import (
	"context"

	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/core/ports"
)

// UpdateOrderCommandHandler applies the edit locally and pushes the full
// record to the server.
type UpdateOrderCommandHandler struct {
	orders ports.OrderClient
}

// NewUpdateOrderCommandHandler creates a handler for order edits.
func NewUpdateOrderCommandHandler(orders ports.OrderClient) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{orders: orders}
}

// Handle mutates the aggregate through ApplyEdit and persists it remotely,
// returning the server's authoritative copy.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o := cmd.Order()
	if err := o.ApplyEdit(cmd.Customer(), cmd.Amount(), cmd.DeliveryFee()); err != nil {
		return nil, err
	}

	return h.orders.Update(ctx, o)
}
