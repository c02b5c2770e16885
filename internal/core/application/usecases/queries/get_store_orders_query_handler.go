package queries

import (
	"context"
	"errors"
	"log/slog"

	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

// GetStoreOrdersQueryHandler lists a store's orders from the remote API.
type GetStoreOrdersQueryHandler struct {
	orders ports.OrderClient
	logger *slog.Logger
}

// NewGetStoreOrdersQueryHandler creates a handler for store order listings.
func NewGetStoreOrdersQueryHandler(orders ports.OrderClient, logger *slog.Logger) GetStoreOrdersQueryHandler {
	return GetStoreOrdersQueryHandler{
		orders: orders,
		logger: logger.With("component", "queries.GetStoreOrders"),
	}
}

// Handle fetches the store's orders. Transient failures degrade to an empty
// list so the screen keeps rendering; a missing token propagates.
func (h GetStoreOrdersQueryHandler) Handle(ctx context.Context, query GetStoreOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.ListForStore(ctx, query.StoreID(), query.WindowHours())
	if err != nil {
		if errors.Is(err, errs.ErrNotAuthenticated) {
			return nil, err
		}
		h.logger.WarnContext(ctx, "store order list degraded to empty", "error", err)
		return []*order.Order{}, nil
	}
	return orders, nil
}
