package commands

import (
	"context"

	"lastmile/internal/core/ports"
)

// DeleteOrderCommandHandler removes an order from the remote collection.
type DeleteOrderCommandHandler struct {
	orders ports.OrderClient
}

// NewDeleteOrderCommandHandler creates a handler for order deletions.
func NewDeleteOrderCommandHandler(orders ports.OrderClient) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{orders: orders}
}

// Handle deletes the order remotely.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orders.Delete(ctx, cmd.OrderID())
}
