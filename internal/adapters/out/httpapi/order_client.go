package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
)

// ListForStore returns all orders of a store, optionally windowed to the last
// windowHours hours. The hours parameter is omitted entirely when nil, which
// the server treats as "no window".
func (c *Client) ListForStore(ctx context.Context, storeID kernel.UUID, windowHours *int) ([]*order.Order, error) {
	if err := storeID.Validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	if windowHours != nil {
		query.Set("hours", strconv.Itoa(*windowHours))
	}

	var dtos []orderDTO
	err := c.do(ctx, call{
		op:         "listForStore",
		method:     http.MethodGet,
		path:       "/api/orders/store/" + storeID.String(),
		query:      query,
		authorized: true,
		resource:   "storeId",
		resourceID: storeID.String(),
	}, &dtos)
	if err != nil {
		return nil, err
	}

	return ordersFromDTO(dtos)
}

// ListAvailable returns the Created orders within maxDistanceKm of the
// courier's last known position, created in the last windowHours hours. The
// filtering happens server-side; the client only passes the parameters.
func (c *Client) ListAvailable(ctx context.Context, courierID kernel.UUID, windowHours int, maxDistanceKm float64) ([]*order.Order, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("idCourier", courierID.String())
	query.Set("hours", strconv.Itoa(windowHours))
	query.Set("distance", strconv.FormatFloat(maxDistanceKm, 'f', -1, 64))

	var dtos []orderDTO
	err := c.do(ctx, call{
		op:         "listAvailable",
		method:     http.MethodGet,
		path:       "/api/orders/status/" + order.Created.String(),
		query:      query,
		authorized: true,
	}, &dtos)
	if err != nil {
		return nil, err
	}

	return ordersFromDTO(dtos)
}

// ListAssigned returns the orders currently assigned to the courier.
func (c *Client) ListAssigned(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("status", order.Assigned.String())

	var dtos []orderDTO
	err := c.do(ctx, call{
		op:         "listAssigned",
		method:     http.MethodGet,
		path:       "/api/orders/courier/" + courierID.String(),
		query:      query,
		authorized: true,
		resource:   "courierId",
		resourceID: courierID.String(),
	}, &dtos)
	if err != nil {
		return nil, err
	}

	return ordersFromDTO(dtos)
}

// ListForCourier returns every order bound to the courier regardless of
// status; the archive projection filters it down to the terminal ones.
func (c *Client) ListForCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []orderDTO
	err := c.do(ctx, call{
		op:         "listForCourier",
		method:     http.MethodGet,
		path:       "/api/orders/courier/" + courierID.String(),
		authorized: true,
		resource:   "courierId",
		resourceID: courierID.String(),
	}, &dtos)
	if err != nil {
		return nil, err
	}

	return ordersFromDTO(dtos)
}

// Create persists a new order and returns the server's authoritative copy.
func (c *Client) Create(ctx context.Context, o *order.Order) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var dto orderDTO
	err := c.do(ctx, call{
		op:         "createOrder",
		method:     http.MethodPost,
		path:       "/api/orders",
		body:       orderToDTO(o),
		authorized: true,
	}, &dto)
	if err != nil {
		return nil, err
	}

	return orderFromDTO(dto)
}

// Update performs a full-record write of the order's fields.
func (c *Client) Update(ctx context.Context, o *order.Order) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var dto orderDTO
	err := c.do(ctx, call{
		op:         "updateOrder",
		method:     http.MethodPut,
		path:       "/api/orders/" + o.ID().String(),
		body:       orderToDTO(o),
		authorized: true,
		resource:   "orderId",
		resourceID: o.ID().String(),
	}, &dto)
	if err != nil {
		return nil, err
	}

	return orderFromDTO(dto)
}

// Delete removes the order. The server answers 204 with no body.
func (c *Client) Delete(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return c.do(ctx, call{
		op:         "deleteOrder",
		method:     http.MethodDelete,
		path:       "/api/orders/" + orderID.String(),
		authorized: true,
		resource:   "orderId",
		resourceID: orderID.String(),
	}, nil)
}

// Claim performs the conditional assignment. The server is the arbiter of the
// race: a 409 means another courier won and surfaces as errs.ErrOrderConflict.
func (c *Client) Claim(ctx context.Context, orderID, courierID kernel.UUID) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dto orderDTO
	err := c.do(ctx, call{
		op:     "claimOrder",
		method: http.MethodPatch,
		path:   fmt.Sprintf("/api/orders/%s/assign", orderID),
		body: assignRequest{
			CourierID: courierID.String(),
			Status:    order.Assigned.String(),
		},
		authorized: true,
		resource:   "orderId",
		resourceID: orderID.String(),
		conflictID: orderID.String(),
	}, &dto)
	if err != nil {
		return nil, err
	}

	return orderFromDTO(dto)
}

// SetStatus performs the status-only transition used for Delivered and
// Returned.
func (c *Client) SetStatus(ctx context.Context, orderID kernel.UUID, status order.Status) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dto orderDTO
	err := c.do(ctx, call{
		op:         "setOrderStatus",
		method:     http.MethodPatch,
		path:       fmt.Sprintf("/api/orders/%s/status", orderID),
		body:       statusRequest{Status: status.String()},
		authorized: true,
		resource:   "orderId",
		resourceID: orderID.String(),
	}, &dto)
	if err != nil {
		return nil, err
	}

	return orderFromDTO(dto)
}
