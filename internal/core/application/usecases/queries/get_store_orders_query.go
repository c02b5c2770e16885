package queries

import (
	"errors"

	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/guard"
)

var (
	ErrGetStoreOrdersQueryIsNotConstructed = errors.New(
		"GetStoreOrdersQuery must be created via NewGetStoreOrdersQuery constructor",
	)
)

// GetStoreOrdersQuery retrieves every order belonging to the acting store,
// newest first as the server returns them. An optional window restricts the
// result to orders created in the last N hours.
type GetStoreOrdersQuery struct {
	storeID     kernel.UUID
	windowHours *int

	guard guard.ConstructorGuard
}

// NewGetStoreOrdersQuery creates the query for the acting store. windowHours
// nil means no time restriction.
func NewGetStoreOrdersQuery(a *actor.Actor, windowHours *int) (GetStoreOrdersQuery, error) {
	if err := a.Validate(); err != nil {
		return GetStoreOrdersQuery{}, err
	}
	if err := a.Role().ValidateCan(actor.CapCreateOrders); err != nil {
		return GetStoreOrdersQuery{}, err
	}

	return GetStoreOrdersQuery{
		storeID:     a.ID(),
		windowHours: windowHours,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStoreOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreOrdersQueryIsNotConstructed)
}

// StoreID returns the store whose orders are listed.
func (q GetStoreOrdersQuery) StoreID() kernel.UUID {
	return q.storeID
}

// WindowHours returns the time window, or nil for the full history.
func (q GetStoreOrdersQuery) WindowHours() *int {
	return q.windowHours
}
