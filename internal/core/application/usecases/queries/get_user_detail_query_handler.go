package queries

import (
	"context"

	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/ports"
)

// GetUserDetailQueryHandler fetches a user's display projection. Unlike the
// list queries there is no degrade policy: a contact card either loads or
// reports its error.
type GetUserDetailQueryHandler struct {
	users ports.UserClient
}

// NewGetUserDetailQueryHandler creates a handler for user lookups.
func NewGetUserDetailQueryHandler(users ports.UserClient) GetUserDetailQueryHandler {
	return GetUserDetailQueryHandler{users: users}
}

// Handle fetches the user's detail.
func (h GetUserDetailQueryHandler) Handle(ctx context.Context, query GetUserDetailQuery) (*actor.Detail, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.users.Get(ctx, query.UserID())
}
