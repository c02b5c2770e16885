package jobs

import (
	"context"
	"log/slog"

	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/application/views"
	"lastmile/internal/core/domain/model/actor"
)

// Refresher fetches the order lists the acting identity cares about and
// applies them to the board. A store refreshes its own orders; a courier
// refreshes the available, assigned and archived lists. Each slot's ticket
// is taken before the fetch so straggling responses cannot clobber newer
// state.
type Refresher struct {
	identity *actor.Actor
	board    *views.Board

	storeOrders     queries.GetStoreOrdersQueryHandler
	availableOrders queries.GetAvailableOrdersQueryHandler
	assignedOrders  queries.GetAssignedOrdersQueryHandler
	archivedOrders  queries.GetArchivedOrdersQueryHandler

	windowHours   int
	maxDistanceKm float64

	logger *slog.Logger
}

// NewRefresher wires a refresher for the acting identity. windowHours and
// maxDistanceKm bound the courier's available-orders fetch; windowHours also
// bounds the store's listing.
func NewRefresher(
	identity *actor.Actor,
	board *views.Board,
	storeOrders queries.GetStoreOrdersQueryHandler,
	availableOrders queries.GetAvailableOrdersQueryHandler,
	assignedOrders queries.GetAssignedOrdersQueryHandler,
	archivedOrders queries.GetArchivedOrdersQueryHandler,
	windowHours int,
	maxDistanceKm float64,
	logger *slog.Logger,
) *Refresher {
	return &Refresher{
		identity:        identity,
		board:           board,
		storeOrders:     storeOrders,
		availableOrders: availableOrders,
		assignedOrders:  assignedOrders,
		archivedOrders:  archivedOrders,
		windowHours:     windowHours,
		maxDistanceKm:   maxDistanceKm,
		logger:          logger.With("component", "jobs.Refresher"),
	}
}

// RefreshNow fetches every list for the identity's role and applies the
// results. Failed fetches are logged; the board keeps the previous content
// for those slots.
func (r *Refresher) RefreshNow(ctx context.Context) {
	switch r.identity.Role() {
	case actor.RoleStore:
		r.refreshStore(ctx)
	case actor.RoleCourier:
		r.refreshCourier(ctx)
	}
}

func (r *Refresher) refreshStore(ctx context.Context) {
	slot := r.board.StoreOrders()
	ticket := slot.Begin()

	query, err := queries.NewGetStoreOrdersQuery(r.identity, r.window())
	if err != nil {
		r.logger.ErrorContext(ctx, "store order refresh skipped", "error", err)
		return
	}

	orders, err := r.storeOrders.Handle(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "store order refresh failed", "error", err)
		return
	}
	slot.Apply(ticket, orders)
}

func (r *Refresher) refreshCourier(ctx context.Context) {
	r.refreshAvailable(ctx)
	r.refreshAssigned(ctx)
	r.refreshArchived(ctx)
}

func (r *Refresher) refreshAvailable(ctx context.Context) {
	slot := r.board.AvailableOrders()
	ticket := slot.Begin()

	query, err := queries.NewGetAvailableOrdersQuery(r.identity, r.windowHours, r.maxDistanceKm)
	if err != nil {
		r.logger.ErrorContext(ctx, "available order refresh skipped", "error", err)
		return
	}

	orders, err := r.availableOrders.Handle(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "available order refresh failed", "error", err)
		return
	}
	slot.Apply(ticket, orders)
}

func (r *Refresher) refreshAssigned(ctx context.Context) {
	slot := r.board.AssignedOrders()
	ticket := slot.Begin()

	query, err := queries.NewGetAssignedOrdersQuery(r.identity)
	if err != nil {
		r.logger.ErrorContext(ctx, "assigned order refresh skipped", "error", err)
		return
	}

	orders, err := r.assignedOrders.Handle(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "assigned order refresh failed", "error", err)
		return
	}
	slot.Apply(ticket, orders)
}

func (r *Refresher) refreshArchived(ctx context.Context) {
	slot := r.board.ArchivedOrders()
	ticket := slot.Begin()

	query, err := queries.NewGetArchivedOrdersQuery(r.identity)
	if err != nil {
		r.logger.ErrorContext(ctx, "archived order refresh skipped", "error", err)
		return
	}

	orders, err := r.archivedOrders.Handle(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "archived order refresh failed", "error", err)
		return
	}
	slot.Apply(ticket, orders)
}

func (r *Refresher) window() *int {
	if r.windowHours <= 0 {
		return nil
	}
	hours := r.windowHours
	return &hours
}
