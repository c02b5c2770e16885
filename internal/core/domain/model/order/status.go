package order

import (
	"fmt"

	"lastmile/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a small
// state machine; every transition method returns the new status or an error
// when the transition is not allowed from the current state.
//
// Transitions:
//
//	Created ──> Assigned ──┬──> Delivered
//	                       └──> Returned
//
// Delivered and Returned are terminal; nothing leaves a terminal state.
type Status int

const (
	// Unknown is the invalid zero value, kept to catch uninitialized statuses.
	Unknown Status = iota

	// Created is the initial state: the store has published the order and no
	// courier has claimed it yet.
	Created

	// Assigned means exactly one courier has won the claim and is delivering.
	Assigned

	// Delivered is the terminal success state, set by the assigned courier.
	Delivered

	// Returned is the terminal failure state: the courier brought the
	// merchandise back to the store.
	Returned
)

// statusStrings maps statuses to their wire representation. The remote API
// speaks upper-case status names.
func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Created:   "CREATED",
		Assigned:  "ASSIGNED",
		Delivered: "DELIVERED",
		Returned:  "RETURNED",
	}
}

func validStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "CREATED",
		Assigned:  "ASSIGNED",
		Delivered: "DELIVERED",
		Returned:  "RETURNED",
	}
}

// StatusFromString parses a wire status name. Returns an error for anything
// that is not one of the four valid statuses.
func StatusFromString(s string) (Status, error) {
	for status, str := range validStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the status is one of the four valid values.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status ends the order lifecycle.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Returned
}

// ValidateAssign checks that a claim is allowed from the current status
// without performing the transition. Only Created orders can be claimed;
// there is no reassignment of an already assigned order.
func (s Status) ValidateAssign() error {
	if s != Created {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to assign", s))
	}
	return nil
}

// ValidateCanHaveCourier checks the consistency between status and courier
// binding: a Created order must not have a courier, every other valid status
// must. This is the courierId/status invariant applied when orders are
// reconstructed from the wire.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s == Created {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a courier", s))
	}
	if !courier && s != Created {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no courier", s))
	}
	return nil
}

// ValidateEdit checks that field edits and deletion are still allowed.
// Terminal orders are frozen.
func (s Status) ValidateEdit() error {
	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order can no longer be modified", s))
	}
	return s.Validate()
}

// Assign transitions the status to Assigned. Only valid from Created.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}
	return Assigned, nil
}

// Deliver transitions the status to Delivered. Only valid from Assigned.
func (s Status) Deliver() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to deliver", s))
	}
	return Delivered, nil
}

// Return transitions the status to Returned. Only valid from Assigned.
func (s Status) Return() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to return", s))
	}
	return Returned, nil
}
