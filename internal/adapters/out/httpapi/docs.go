// Package httpapi implements the outbound ports against the remote
// coordination API. It owns the wire DTOs, the bearer-token handling and the
// translation of HTTP status codes into the errs taxonomy, so nothing above
// this package ever sees a status code or matches on response text.
//
// One Client implements ports.OrderClient, ports.UserClient and
// ports.AuthClient; the token comes from an injected ports.TokenStore and is
// read before every authenticated request.
package httpapi
