// Package session owns the login lifecycle: establishing a session from
// credentials, resolving the stored token into the acting identity, and
// tearing the session down. The token slot is the only session state; the
// identity itself is re-resolved from the server on demand.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/ports"
)

// Manager coordinates the auth endpoints, the token slot and the device's
// push token.
type Manager struct {
	auth   ports.AuthClient
	tokens ports.TokenStore
	push   ports.PushTokenProvider
	logger *slog.Logger
}

// NewManager wires the session manager.
func NewManager(auth ports.AuthClient, tokens ports.TokenStore, push ports.PushTokenProvider, logger *slog.Logger) *Manager {
	return &Manager{
		auth:   auth,
		tokens: tokens,
		push:   push,
		logger: logger.With("component", "session.Manager"),
	}
}

// Establish logs in, stores the token and resolves the acting identity.
// Registering the device's push token is best effort: a device without one,
// or a registration failure, leaves the session fully usable.
func (m *Manager) Establish(ctx context.Context, email, password string) (*actor.Actor, error) {
	token, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := m.tokens.Save(ctx, token); err != nil {
		return nil, fmt.Errorf("save token: %w", err)
	}

	identity, err := m.auth.Me(ctx)
	if err != nil {
		return nil, err
	}

	m.registerPushToken(ctx, identity)

	m.logger.InfoContext(ctx, "session established",
		"userId", identity.ID().String(), "role", identity.Role().String())
	return identity, nil
}

// Current resolves the stored token into the acting identity. Without a
// stored token there is no session and no network call is made.
func (m *Manager) Current(ctx context.Context) (*actor.Actor, error) {
	token, err := m.tokens.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}
	if token == "" {
		return nil, nil
	}

	return m.auth.Me(ctx)
}

// Clear ends the session by emptying the token slot. Clearing twice is fine.
func (m *Manager) Clear(ctx context.Context) error {
	return m.tokens.Clear(ctx)
}

func (m *Manager) registerPushToken(ctx context.Context, identity *actor.Actor) {
	pushToken, err := m.push.PushToken(ctx)
	if err != nil {
		m.logger.WarnContext(ctx, "push token unavailable", "error", err)
		return
	}
	if pushToken == "" {
		return
	}

	if err := m.auth.RegisterNotificationToken(ctx, identity.ID(), pushToken); err != nil {
		m.logger.WarnContext(ctx, "push token registration failed", "error", err)
	}
}
