package queries

import (
	"errors"

	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/guard"
)

var (
	ErrGetUserDetailQueryIsNotConstructed = errors.New(
		"GetUserDetailQuery must be created via NewGetUserDetailQuery constructor",
	)
)

// GetUserDetailQuery retrieves the display projection of any store or
// courier: the counterpart's contact card on an order screen, or the actor's
// own profile. Any authenticated actor may look up any user.
type GetUserDetailQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserDetailQuery creates a lookup for the given user.
func NewGetUserDetailQuery(a *actor.Actor, userID kernel.UUID) (GetUserDetailQuery, error) {
	if err := a.Validate(); err != nil {
		return GetUserDetailQuery{}, err
	}
	if err := userID.Validate(); err != nil {
		return GetUserDetailQuery{}, err
	}

	return GetUserDetailQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetUserDetailQueryIsNotConstructed)
}

// UserID returns the user being looked up.
func (q GetUserDetailQuery) UserID() kernel.UUID {
	return q.userID
}
