package httpapi

import (
	"context"
	"net/http"

	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/ports"
)

// Get fetches the display projection of a store or courier.
func (c *Client) Get(ctx context.Context, userID kernel.UUID) (*actor.Detail, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto userDTO
	err := c.do(ctx, call{
		op:         "getUser",
		method:     http.MethodGet,
		path:       "/api/users/" + userID.String(),
		authorized: true,
		resource:   "userId",
		resourceID: userID.String(),
	}, &dto)
	if err != nil {
		return nil, err
	}

	return detailFromDTO(dto)
}

// UpdateProfile patches the actor's own profile fields; empty fields are
// omitted from the payload and left unchanged by the server.
func (c *Client) UpdateProfile(ctx context.Context, userID kernel.UUID, update ports.ProfileUpdate) (*actor.Detail, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto userDTO
	err := c.do(ctx, call{
		op:     "updateProfile",
		method: http.MethodPatch,
		path:   "/api/users/" + userID.String(),
		body: profileRequest{
			Name:    update.Name,
			Phone:   update.Phone,
			Address: update.Address,
		},
		authorized: true,
		resource:   "userId",
		resourceID: userID.String(),
	}, &dto)
	if err != nil {
		return nil, err
	}

	return detailFromDTO(dto)
}

// ChangePassword replaces the account password. The server verifies the old
// password and answers an empty body on success.
func (c *Client) ChangePassword(ctx context.Context, userID kernel.UUID, oldPassword, newPassword string) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	return c.do(ctx, call{
		op:     "changePassword",
		method: http.MethodPatch,
		path:   "/api/users/" + userID.String() + "/password",
		body: passwordRequest{
			OldPassword: oldPassword,
			NewPassword: newPassword,
		},
		authorized: true,
		resource:   "userId",
		resourceID: userID.String(),
	}, nil)
}

// UpdateLocation publishes the courier's current device position.
func (c *Client) UpdateLocation(ctx context.Context, userID kernel.UUID, location kernel.Location) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if err := location.Validate(); err != nil {
		return err
	}

	return c.do(ctx, call{
		op:     "updateLocation",
		method: http.MethodPatch,
		path:   "/api/users/" + userID.String() + "/location",
		body: locationRequest{
			Latitude:  location.Latitude(),
			Longitude: location.Longitude(),
		},
		authorized: true,
		resource:   "userId",
		resourceID: userID.String(),
	}, nil)
}
