package ports

import (
	"context"

	"lastmile/internal/core/domain/model/kernel"
)

// TokenStore is the single persisted slot for the auth token. One token per
// login, overwritten on the next login, cleared on logout. The store is the
// only client-side persistence the application has.
type TokenStore interface {
	// Load returns the stored token, or an empty string when none is stored.
	Load(ctx context.Context) (string, error)

	// Save overwrites the slot with a new token.
	Save(ctx context.Context, token string) error

	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}

// LocationProvider yields the device's current position. Implemented by the
// platform GPS layer; the core only forwards its output to the API.
type LocationProvider interface {
	CurrentLocation(ctx context.Context) (kernel.Location, error)
}

// PushTokenProvider yields the device's notification registration token, or
// an empty string when the platform has none to offer.
type PushTokenProvider interface {
	PushToken(ctx context.Context) (string, error)
}
