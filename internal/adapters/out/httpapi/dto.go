package httpapi

import (
	"time"

	"lastmile/internal/core/domain/model/actor"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/order"
)

// orderDTO is the wire shape of an order.
type orderDTO struct {
	ID              string    `json:"id,omitempty"`
	StoreID         string    `json:"storeId"`
	CourierID       *string   `json:"courierId,omitempty"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone,omitempty"`
	CustomerAddress string    `json:"customerAddress,omitempty"`
	Amount          float64   `json:"amount"`
	DeliveryFee     float64   `json:"deliveryFee"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}

// orderToDTO maps an order aggregate to its wire shape.
func orderToDTO(o *order.Order) orderDTO {
	var courierID *string
	if id := o.Courier(); id != nil {
		s := id.String()
		courierID = &s
	}

	return orderDTO{
		ID:              o.ID().String(),
		StoreID:         o.StoreID().String(),
		CourierID:       courierID,
		CustomerName:    o.Customer().Name(),
		CustomerPhone:   o.Customer().Phone(),
		CustomerAddress: o.Customer().Address(),
		Amount:          o.Amount().Amount(),
		DeliveryFee:     o.DeliveryFee().Amount(),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

// orderFromDTO reconstructs the aggregate, re-validating every invariant the
// server is supposed to uphold. A response that violates the courier/status
// rule is rejected here instead of leaking into the views.
func orderFromDTO(dto orderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromString(dto.StoreID)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil && *dto.CourierID != "" {
		parsed, courierErr := kernel.UUIDFromString(*dto.CourierID)
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &parsed
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerPhone, dto.CustomerAddress)
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}
	fee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, storeID, courierID, customer, amount, fee, status, dto.CreatedAt, dto.UpdatedAt)
}

func ordersFromDTO(dtos []orderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := orderFromDTO(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// userDTO is the wire shape of a store or courier record.
type userDTO struct {
	ID        string   `json:"id"`
	Role      string   `json:"role"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone,omitempty"`
	Address   string   `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (dto userDTO) location() (*kernel.Location, error) {
	if dto.Latitude == nil || dto.Longitude == nil {
		return nil, nil
	}
	loc, err := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// actorFromDTO builds the session identity from a /auth/me response.
func actorFromDTO(dto userDTO) (*actor.Actor, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	role, err := actor.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}
	loc, err := dto.location()
	if err != nil {
		return nil, err
	}

	return actor.NewActor(id, role, dto.Name, dto.Phone, loc)
}

// detailFromDTO builds the read-only counterpart projection.
func detailFromDTO(dto userDTO) (*actor.Detail, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	role, err := actor.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}
	loc, err := dto.location()
	if err != nil {
		return nil, err
	}

	return &actor.Detail{
		ID:       id,
		Role:     role,
		Name:     dto.Name,
		Phone:    dto.Phone,
		Address:  dto.Address,
		Location: loc,
	}, nil
}

// Request payloads.
type (
	loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	loginResponse struct {
		Token string `json:"token"`
	}

	assignRequest struct {
		CourierID string `json:"courierId"`
		Status    string `json:"status"`
	}

	statusRequest struct {
		Status string `json:"status"`
	}

	locationRequest struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}

	passwordRequest struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}

	notificationTokenRequest struct {
		NotificationToken string `json:"notificationToken"`
	}

	profileRequest struct {
		Name    string `json:"name,omitempty"`
		Phone   string `json:"phone,omitempty"`
		Address string `json:"address,omitempty"`
	}
)
