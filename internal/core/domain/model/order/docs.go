// Package order contains the Order aggregate and its Status state machine.
//
// An order is created by a store, claimed by exactly one courier and finished
// in a terminal state:
//
//	Created ──> Assigned ──┬──> Delivered
//	                       └──> Returned
//
// The client enforces the transitions locally before any request is issued,
// but the server remains the arbiter of the claim race: a conditional
// assignment that loses the race comes back as a conflict, never as a second
// winner.
package order
