package order

import (
	"errors"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created via
// NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the recipient of an order: free-text contact details entered by
// the store. Only the name is mandatory; phone and address may be blank when
// the store arranges them out of band.
type Customer struct { //nolint:recvcheck //using for validation
	name    string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer. The name must not be empty.
func NewCustomer(name, phone, address string) (Customer, error) {
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customerName")
	}

	return Customer{
		name:    name,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Name returns the customer's display name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number, possibly empty.
func (c Customer) Phone() string {
	return c.phone
}

// Address returns the free-text delivery address, possibly empty.
func (c Customer) Address() string {
	return c.address
}

// Validate ensures the Customer was created via NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}
