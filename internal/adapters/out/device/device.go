// Package device provides the host-side implementations of the device
// ports. A phone would back these with its GPS and push services; the
// daemon backs them with configuration, which is enough for a stationary
// courier terminal and for tests.
package device

import (
	"context"

	"lastmile/internal/core/domain/model/kernel"
)

// StaticLocation is a LocationProvider pinned to one configured position.
type StaticLocation struct {
	location kernel.Location
}

// NewStaticLocation creates a provider for the given coordinates.
func NewStaticLocation(latitude, longitude float64) (*StaticLocation, error) {
	loc, err := kernel.NewLocation(latitude, longitude)
	if err != nil {
		return nil, err
	}
	return &StaticLocation{location: loc}, nil
}

// CurrentLocation returns the configured position.
func (p *StaticLocation) CurrentLocation(context.Context) (kernel.Location, error) {
	return p.location, nil
}

// StaticToken is a PushTokenProvider with a fixed token. An empty token
// means the host has no push registration to offer.
type StaticToken struct {
	token string
}

// NewStaticToken creates a provider for the given token.
func NewStaticToken(token string) *StaticToken {
	return &StaticToken{token: token}
}

// PushToken returns the configured token.
func (p *StaticToken) PushToken(context.Context) (string, error) {
	return p.token, nil
}
