// Package actor models the authenticated identity driving a session: a store
// or a courier. The Role type enumerates in one place which operations each
// role may perform; commands consult that table instead of branching on the
// role at every call site. The checks are a UX guard only, the server still
// authorizes every mutation.
package actor
