package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the remote-call family. The HTTP adapter translates
// status codes into these; nothing in the codebase matches on message text.
var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrOrderConflict      = errors.New("order already assigned")
	ErrValidationRejected = errors.New("payload rejected")
	ErrRemoteCallFailed   = errors.New("remote call failed")
)

// NotAuthenticatedError reports that an authenticated call could not be made:
// either no token is stored or the server refused the one presented. There is
// no retry and no refresh, the user has to log in again.
type NotAuthenticatedError struct {
	Operation string
	Cause     error
}

// NewNotAuthenticatedError creates a NotAuthenticatedError for the named
// operation.
func NewNotAuthenticatedError(operation string) *NotAuthenticatedError {
	return &NotAuthenticatedError{Operation: operation}
}

// NewNotAuthenticatedErrorWithCause creates a NotAuthenticatedError carrying
// the underlying cause.
func NewNotAuthenticatedErrorWithCause(operation string, cause error) *NotAuthenticatedError {
	return &NotAuthenticatedError{Operation: operation, Cause: cause}
}

func (e *NotAuthenticatedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrNotAuthenticated, e.Operation, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrNotAuthenticated, e.Operation)
}

func (e *NotAuthenticatedError) Unwrap() error {
	return ErrNotAuthenticated
}

// OrderConflictError reports a lost claim race: between the read and the
// write another courier bound itself to the order and the server rejected
// the conditional assignment.
type OrderConflictError struct {
	OrderID string
	Cause   error
}

// NewOrderConflictError creates an OrderConflictError for the contested order.
func NewOrderConflictError(orderID string) *OrderConflictError {
	return &OrderConflictError{OrderID: orderID}
}

// NewOrderConflictErrorWithCause creates an OrderConflictError carrying the
// underlying cause.
func NewOrderConflictErrorWithCause(orderID string, cause error) *OrderConflictError {
	return &OrderConflictError{OrderID: orderID, Cause: cause}
}

func (e *OrderConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrOrderConflict, e.OrderID, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrOrderConflict, e.OrderID)
}

func (e *OrderConflictError) Unwrap() error {
	return ErrOrderConflict
}

// ValidationRejectedError reports that the server refused a create or update
// payload. Message carries the server's explanation when one was returned.
type ValidationRejectedError struct {
	Operation string
	Message   string
	Cause     error
}

// NewValidationRejectedError creates a ValidationRejectedError for the named
// operation with the server's message.
func NewValidationRejectedError(operation, message string) *ValidationRejectedError {
	return &ValidationRejectedError{Operation: operation, Message: message}
}

// NewValidationRejectedErrorWithCause creates a ValidationRejectedError
// carrying the underlying cause.
func NewValidationRejectedErrorWithCause(operation, message string, cause error) *ValidationRejectedError {
	return &ValidationRejectedError{Operation: operation, Message: message, Cause: cause}
}

func (e *ValidationRejectedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s, message is: %s (cause: %s)",
			ErrValidationRejected, e.Operation, sanitize(e.Message), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s, message is: %s", ErrValidationRejected, e.Operation, sanitize(e.Message))
}

func (e *ValidationRejectedError) Unwrap() error {
	return ErrValidationRejected
}

// RemoteCallError reports a transport failure or an unexpected non-2xx
// response. StatusCode is zero when the request never reached the server.
type RemoteCallError struct {
	Operation  string
	StatusCode int
	Cause      error
}

// NewRemoteCallError creates a RemoteCallError for the named operation and
// response status.
func NewRemoteCallError(operation string, statusCode int) *RemoteCallError {
	return &RemoteCallError{Operation: operation, StatusCode: statusCode}
}

// NewRemoteCallErrorWithCause creates a RemoteCallError carrying the
// underlying cause.
func NewRemoteCallErrorWithCause(operation string, statusCode int, cause error) *RemoteCallError {
	return &RemoteCallError{Operation: operation, StatusCode: statusCode, Cause: cause}
}

func (e *RemoteCallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s, status is: %d (cause: %s)",
			ErrRemoteCallFailed, e.Operation, e.StatusCode, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s, status is: %d", ErrRemoteCallFailed, e.Operation, e.StatusCode)
}

func (e *RemoteCallError) Unwrap() error {
	return ErrRemoteCallFailed
}
