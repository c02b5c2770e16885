package queries

import (
	"context"
	"errors"
	"log/slog"

	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

// GetAvailableOrdersQueryHandler lists claimable orders for a courier.
type GetAvailableOrdersQueryHandler struct {
	orders ports.OrderClient
	logger *slog.Logger
}

// NewGetAvailableOrdersQueryHandler creates a handler for the available
// orders listing.
func NewGetAvailableOrdersQueryHandler(orders ports.OrderClient, logger *slog.Logger) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{
		orders: orders,
		logger: logger.With("component", "queries.GetAvailableOrders"),
	}
}

// Handle fetches the claimable orders. The result is a snapshot that may be
// stale the moment it arrives; the claim protocol resolves any race.
func (h GetAvailableOrdersQueryHandler) Handle(ctx context.Context, query GetAvailableOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.ListAvailable(ctx, query.CourierID(), query.WindowHours(), query.MaxDistanceKm())
	if err != nil {
		if errors.Is(err, errs.ErrNotAuthenticated) {
			return nil, err
		}
		h.logger.WarnContext(ctx, "available order list degraded to empty", "error", err)
		return []*order.Order{}, nil
	}
	return orders, nil
}
