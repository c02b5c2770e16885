package order

import (
	"errors"
	"time"

	"lastmile/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root of the delivery workflow. It links a store, a
// customer and (once claimed) a courier, and owns the lifecycle from Created
// through Assigned to a terminal state.
//
// Invariants:
//   - id and storeID are valid identifiers
//   - courierID is nil exactly while the status is Created
//   - amount and deliveryFee are non-negative
//   - status transitions follow the Status state machine
//
// Identifiers and timestamps are server-authoritative: NewOrder builds the
// local half of a draft that the server completes, RestoreOrder rebuilds a
// persisted order from an API response and re-checks the invariants on the
// way in.
type Order struct {
	id          kernel.UUID
	storeID     kernel.UUID
	courierID   *kernel.UUID
	customer    Customer
	amount      kernel.Money
	deliveryFee kernel.Money
	status      Status
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewOrder creates a fresh order in Created status with no courier bound.
// Timestamps stay zero until the server persists the order and returns its
// authoritative copy.
func NewOrder(id kernel.UUID, storeID kernel.UUID, customer Customer, amount, deliveryFee kernel.Money) (*Order, error) {
	o := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStoreID(storeID),
		o.setCustomer(customer),
	); err != nil {
		return nil, err
	}

	o.amount = amount
	o.deliveryFee = deliveryFee
	return o, nil
}

// RestoreOrder reconstructs an order from persisted state, re-validating all
// invariants including the courier/status consistency rule. It is the only
// path from an API response into the domain.
func RestoreOrder(
	id kernel.UUID,
	storeID kernel.UUID,
	courierID *kernel.UUID,
	customer Customer,
	amount kernel.Money,
	deliveryFee kernel.Money,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStoreID(storeID),
		o.setCustomer(customer),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}
	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}

	o.courierID = courierID
	o.amount = amount
	o.deliveryFee = deliveryFee
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// StoreID returns the identifier of the store that created the order.
func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// Courier returns the assigned courier's ID, nil while unclaimed.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Customer returns the recipient's contact details.
func (o *Order) Customer() Customer {
	return o.customer
}

// Amount returns the merchandise value.
func (o *Order) Amount() kernel.Money {
	return o.amount
}

// DeliveryFee returns the courier's fee.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the server-side creation timestamp, zero for drafts.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the server-side last-modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Assign binds the order to a courier and moves it to Assigned. Valid only
// from Created; a second claim on the same order fails here before any
// request is made, and on the server when two clients race.
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Deliver marks the order as delivered. Valid only from Assigned.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Return marks the order as returned to the store. Valid only from Assigned.
func (o *Order) Return() error {
	newStatus, err := o.status.Return()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ApplyEdit replaces the editable fields (customer contact, amounts).
// Rejected once the order reached a terminal state.
func (o *Order) ApplyEdit(customer Customer, amount, deliveryFee kernel.Money) error {
	if err := o.status.ValidateEdit(); err != nil {
		return err
	}
	if err := customer.Validate(); err != nil {
		return err
	}

	o.customer = customer
	o.amount = amount
	o.deliveryFee = deliveryFee
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	o.storeID = storeID
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}
