package queries

import (
	"errors"
	"fmt"

	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

var (
	ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
		"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
	)
)

// GetAvailableOrdersQuery retrieves the Created orders the acting courier can
// claim: created within the window, within reach of the courier's last known
// position. The server does the filtering; the courier's ID lets it rank by
// distance.
type GetAvailableOrdersQuery struct {
	courierID     kernel.UUID
	windowHours   int
	maxDistanceKm float64

	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates the query for the acting courier.
func NewGetAvailableOrdersQuery(a *actor.Actor, windowHours int, maxDistanceKm float64) (GetAvailableOrdersQuery, error) {
	if err := a.Validate(); err != nil {
		return GetAvailableOrdersQuery{}, err
	}
	if err := a.Role().ValidateCan(actor.CapClaimOrders); err != nil {
		return GetAvailableOrdersQuery{}, err
	}
	if windowHours <= 0 {
		return GetAvailableOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("windowHours",
			fmt.Errorf("%d must be positive", windowHours))
	}
	if maxDistanceKm <= 0 {
		return GetAvailableOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("maxDistanceKm",
			fmt.Errorf("%v must be positive", maxDistanceKm))
	}

	return GetAvailableOrdersQuery{
		courierID:     a.ID(),
		windowHours:   windowHours,
		maxDistanceKm: maxDistanceKm,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// CourierID returns the courier browsing for orders.
func (q GetAvailableOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

// WindowHours returns the creation-time window in hours.
func (q GetAvailableOrdersQuery) WindowHours() int {
	return q.windowHours
}

// MaxDistanceKm returns the reach limit in kilometers.
func (q GetAvailableOrdersQuery) MaxDistanceKm() float64 {
	return q.maxDistanceKm
}
