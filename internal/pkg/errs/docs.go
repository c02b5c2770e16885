// Package errs provides standardized error types for the client.
//
// Two families live here. The value family covers construction and lookup
// failures inside the process:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: an object cannot be found
//   - VersionIsInvalidError: a version marker is invalid
//
// The remote family classifies failures of calls against the coordination API:
//   - NotAuthenticatedError: no token is stored, or the server rejected it
//   - OrderConflictError: a claim race was lost, the order is already assigned
//   - ValidationRejectedError: the server rejected a create/update payload
//   - RemoteCallError: transport failure or any other non-2xx response
//
// Each error type follows the same pattern: a sentinel error variable, a
// struct with detail fields, constructors with and without cause, an Error()
// method and an Unwrap() method targeting the sentinel. Callers classify
// failures with errors.Is against the sentinels instead of inspecting
// message text.
package errs
