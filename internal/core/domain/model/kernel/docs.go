// Package kernel contains the shared value objects of the domain model:
// identifiers, geographic locations and monetary amounts. Every type here is
// immutable, constructed through a factory function and validated with the
// constructor-guard pattern, so a zero value never leaks into the domain.
package kernel
