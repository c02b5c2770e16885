package ports

import (
	"context"

	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
)

// ProfileUpdate carries the editable profile fields. Empty strings mean
// "leave unchanged"; the server merges.
type ProfileUpdate struct {
	Name    string
	Phone   string
	Address string
}

// UserClient is typed, authenticated access to user records: the actor's own
// profile and the read-only counterpart projections.
type UserClient interface {
	// Get fetches the display projection of a store or courier.
	Get(ctx context.Context, userID kernel.UUID) (*actor.Detail, error)

	// UpdateProfile patches the actor's own profile fields.
	UpdateProfile(ctx context.Context, userID kernel.UUID, update ProfileUpdate) (*actor.Detail, error)

	// ChangePassword replaces the account password after the server verifies
	// the old one.
	ChangePassword(ctx context.Context, userID kernel.UUID, oldPassword, newPassword string) error

	// UpdateLocation publishes the courier's current device position.
	UpdateLocation(ctx context.Context, userID kernel.UUID, location kernel.Location) error
}

// AuthClient covers the authentication endpoints.
type AuthClient interface {
	// Login exchanges credentials for a bearer token. Does not store it.
	Login(ctx context.Context, email, password string) (string, error)

	// Me resolves the stored token into the acting identity. Round-trips on
	// every call; nothing is cached beyond the token itself.
	Me(ctx context.Context) (*actor.Actor, error)

	// RegisterNotificationToken forwards the device push token so the server
	// can notify the actor about order events.
	RegisterNotificationToken(ctx context.Context, userID kernel.UUID, notificationToken string) error
}
