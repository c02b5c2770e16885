package httpapi

import (
	"context"
	"net/http"

	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
)

// Login exchanges credentials for a bearer token. The only unauthenticated
// call in the client; storing the token is the session layer's job.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" {
		return "", errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	var resp loginResponse
	err := c.do(ctx, call{
		op:     "login",
		method: http.MethodPost,
		path:   "/auth/login",
		body:   loginRequest{Email: email, Password: password},
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errs.NewRemoteCallErrorWithCause("login", http.StatusOK,
			errs.NewValueIsRequiredError("token"))
	}

	return resp.Token, nil
}

// Me resolves the stored token into the acting identity.
func (c *Client) Me(ctx context.Context) (*actor.Actor, error) {
	var dto userDTO
	err := c.do(ctx, call{
		op:         "me",
		method:     http.MethodGet,
		path:       "/auth/me",
		authorized: true,
	}, &dto)
	if err != nil {
		return nil, err
	}

	return actorFromDTO(dto)
}

// RegisterNotificationToken forwards the device push token to the server.
func (c *Client) RegisterNotificationToken(ctx context.Context, userID kernel.UUID, notificationToken string) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if notificationToken == "" {
		return errs.NewValueIsRequiredError("notificationToken")
	}

	return c.do(ctx, call{
		op:         "registerNotificationToken",
		method:     http.MethodPatch,
		path:       "/auth/users/" + userID.String() + "/notification-token",
		body:       notificationTokenRequest{NotificationToken: notificationToken},
		authorized: true,
		resource:   "userId",
		resourceID: userID.String(),
	}, nil)
}
