package queries

import (
	"errors"

	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/guard"
)

var (
	ErrGetArchivedOrdersQueryIsNotConstructed = errors.New(
		"GetArchivedOrdersQuery must be created via NewGetArchivedOrdersQuery constructor",
	)
)

// GetArchivedOrdersQuery retrieves the acting courier's finished deliveries,
// Delivered and Returned alike. The archive is the courier's earnings and
// history view.
type GetArchivedOrdersQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetArchivedOrdersQuery creates the query for the acting courier.
func NewGetArchivedOrdersQuery(a *actor.Actor) (GetArchivedOrdersQuery, error) {
	if err := a.Validate(); err != nil {
		return GetArchivedOrdersQuery{}, err
	}
	if err := a.Role().ValidateCan(actor.CapCompleteOrders); err != nil {
		return GetArchivedOrdersQuery{}, err
	}

	return GetArchivedOrdersQuery{
		courierID: a.ID(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetArchivedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetArchivedOrdersQueryIsNotConstructed)
}

// CourierID returns the courier whose archive is listed.
func (q GetArchivedOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}
