// Package ports defines the interfaces through which the core talks to the
// outside world: the remote coordination API, the token slot and the device
// collaborators (GPS, push registration). Adapters implement these; commands
// and queries depend only on the interfaces.
package ports

import (
	"context"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
)

// OrderClient is typed, authenticated access to the remote order collection.
// Every call reads the stored token and fails fast with a not-authenticated
// error when it is absent; there is no retry and no token refresh.
//
// Read operations return the orders the server sent; degrading a failed read
// to an empty list is the caller's policy, not the client's.
type OrderClient interface {
	// ListForStore returns all orders belonging to a store, optionally
	// limited to the last windowHours hours (nil means no window).
	ListForStore(ctx context.Context, storeID kernel.UUID, windowHours *int) ([]*order.Order, error)

	// ListAvailable returns Created orders near the courier's last known
	// position, created within the window. The geo and time filtering is
	// performed by the server.
	ListAvailable(ctx context.Context, courierID kernel.UUID, windowHours int, maxDistanceKm float64) ([]*order.Order, error)

	// ListAssigned returns the orders currently assigned to the courier.
	ListAssigned(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)

	// ListForCourier returns every order ever bound to the courier,
	// regardless of status. Source data for the courier's archive view.
	ListForCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)

	// Create persists a new order and returns the server's authoritative
	// copy including generated timestamps.
	Create(ctx context.Context, o *order.Order) (*order.Order, error)

	// Update replaces the order's editable fields with a full-record write.
	Update(ctx context.Context, o *order.Order) (*order.Order, error)

	// Delete removes the order. Idempotent from the caller's perspective.
	Delete(ctx context.Context, orderID kernel.UUID) error

	// Claim performs the conditional assignment: courierID plus target
	// status Assigned in a single request. When the order was claimed by
	// another courier first, the server rejects and the error unwraps to
	// errs.ErrOrderConflict.
	Claim(ctx context.Context, orderID, courierID kernel.UUID) (*order.Order, error)

	// SetStatus performs the narrow status-only transition used for the
	// terminal states.
	SetStatus(ctx context.Context, orderID kernel.UUID, status order.Status) (*order.Order, error)
}
