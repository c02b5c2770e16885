package commands

import (
	"context"

	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/core/ports"
)

// CompleteOrderCommandHandler performs the narrow status-only transition into
// a terminal state.
type CompleteOrderCommandHandler struct {
	orders ports.OrderClient
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(orders ports.OrderClient) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{orders: orders}
}

// Handle sets the terminal status remotely and returns the server's copy of
// the finished order.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.orders.SetStatus(ctx, cmd.OrderID(), cmd.Target())
}
