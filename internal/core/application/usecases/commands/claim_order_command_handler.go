package commands

import (
	"context"

	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/core/ports"
)

// ViewRefresher triggers an out-of-band refresh of the order views. The claim
// handler fires it after every attempt, won or lost, so the local view always
// reconverges with the server's truth.
type ViewRefresher interface {
	RefreshNow(ctx context.Context)
}

// NopRefresher is a ViewRefresher that does nothing, for contexts without
// standing views (one-shot tools, tests).
type NopRefresher struct{}

// RefreshNow implements ViewRefresher.
func (NopRefresher) RefreshNow(context.Context) {}

// ClaimOrderCommandHandler executes the race-safe claim protocol. The server
// is the sole arbiter: when another courier claimed the order between this
// client's read and write, the returned error unwraps to
// errs.ErrOrderConflict and the caller shows "already taken".
//
// Example:
//
//	winner, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrOrderConflict):
//	    notify("order already taken")
//	case err != nil:
//	    notify("claim failed")
//	default:
//	    // winner.Courier() is this courier
//	}
type ClaimOrderCommandHandler struct {
	orders    ports.OrderClient
	refresher ViewRefresher
}

// NewClaimOrderCommandHandler creates a handler for claim attempts.
func NewClaimOrderCommandHandler(orders ports.OrderClient, refresher ViewRefresher) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{orders: orders, refresher: refresher}
}

// Handle performs the conditional assignment and reconciles the views
// regardless of the outcome. Success is never assumed before the server
// confirms the new state.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	claimed, err := h.orders.Claim(ctx, cmd.OrderID(), cmd.CourierID())

	// Both outcomes changed (or revealed) server state the local view does
	// not have yet.
	h.refresher.RefreshNow(ctx)

	if err != nil {
		return nil, err
	}
	return claimed, nil
}
