package actor

import (
	"fmt"

	"lastmile/internal/pkg/errs"
)

// Role is the kind of actor driving the session.
type Role int

const (
	// RoleUnknown is the invalid zero value.
	RoleUnknown Role = iota

	// RoleStore creates and manages orders.
	RoleStore

	// RoleCourier claims orders and reports delivery outcomes.
	RoleCourier
)

// Capability names an operation a role may be permitted to perform.
type Capability int

const (
	// CapCreateOrders allows publishing new orders.
	CapCreateOrders Capability = iota
	// CapEditOrders allows editing order fields while non-terminal.
	CapEditOrders
	// CapDeleteOrders allows removing orders.
	CapDeleteOrders
	// CapClaimOrders allows claiming a Created order.
	CapClaimOrders
	// CapCompleteOrders allows setting the terminal status of an assigned order.
	CapCompleteOrders
	// CapPushLocation allows publishing the device position.
	CapPushLocation
)

// roleCapabilities is the single place where role permissions are enumerated.
func roleCapabilities() map[Role]map[Capability]bool {
	return map[Role]map[Capability]bool{
		RoleStore: {
			CapCreateOrders: true,
			CapEditOrders:   true,
			CapDeleteOrders: true,
		},
		RoleCourier: {
			CapClaimOrders:    true,
			CapCompleteOrders: true,
			CapPushLocation:   true,
		},
	}
}

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleStore:   "STORE",
		RoleCourier: "COURIER",
	}
}

// RoleFromString parses a wire role name ("STORE" or "COURIER").
func RoleFromString(s string) (Role, error) {
	for role, str := range roleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the role is Store or Courier.
func (r Role) Validate() error {
	if _, ok := roleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role, "UNKNOWN" for invalid values.
func (r Role) String() string {
	if str, ok := roleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Can reports whether the role is permitted to perform the capability.
func (r Role) Can(c Capability) bool {
	return roleCapabilities()[r][c]
}

// ValidateCan returns a validation error when the role lacks the capability.
func (r Role) ValidateCan(c Capability) error {
	if !r.Can(c) {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%s is not permitted to perform this operation", r))
	}
	return nil
}
