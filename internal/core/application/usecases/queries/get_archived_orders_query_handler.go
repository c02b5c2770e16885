package queries

import (
	"context"
	"errors"
	"log/slog"

	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

// GetArchivedOrdersQueryHandler lists a courier's finished deliveries. The
// server has no dedicated archive endpoint, so the handler fetches the
// courier's full history and keeps the terminal states.
type GetArchivedOrdersQueryHandler struct {
	orders ports.OrderClient
	logger *slog.Logger
}

// NewGetArchivedOrdersQueryHandler creates a handler for the archive
// listing.
func NewGetArchivedOrdersQueryHandler(orders ports.OrderClient, logger *slog.Logger) GetArchivedOrdersQueryHandler {
	return GetArchivedOrdersQueryHandler{
		orders: orders,
		logger: logger.With("component", "queries.GetArchivedOrders"),
	}
}

// Handle fetches the courier's history and filters it down to Delivered and
// Returned orders.
func (h GetArchivedOrdersQueryHandler) Handle(ctx context.Context, query GetArchivedOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history, err := h.orders.ListForCourier(ctx, query.CourierID())
	if err != nil {
		if errors.Is(err, errs.ErrNotAuthenticated) {
			return nil, err
		}
		h.logger.WarnContext(ctx, "archived order list degraded to empty", "error", err)
		return []*order.Order{}, nil
	}

	archived := make([]*order.Order, 0, len(history))
	for _, o := range history {
		if o.Status().IsTerminal() {
			archived = append(archived, o)
		}
	}
	return archived, nil
}
