package queries

import (
	"errors"

	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/guard"
)

var (
	ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
		"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
	)
)

// GetAssignedOrdersQuery retrieves the orders the acting courier is
// currently delivering.
type GetAssignedOrdersQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignedOrdersQuery creates the query for the acting courier.
func NewGetAssignedOrdersQuery(a *actor.Actor) (GetAssignedOrdersQuery, error) {
	if err := a.Validate(); err != nil {
		return GetAssignedOrdersQuery{}, err
	}
	if err := a.Role().ValidateCan(actor.CapClaimOrders); err != nil {
		return GetAssignedOrdersQuery{}, err
	}

	return GetAssignedOrdersQuery{
		courierID: a.ID(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}

// CourierID returns the courier whose active orders are listed.
func (q GetAssignedOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}
