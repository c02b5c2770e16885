// Package commands contains the write operations of the client: order
// creation and editing on the store side, the claim/complete workflow on the
// courier side, and the profile operations shared by both.
//
// Every command is a guarded struct built through its constructor, which also
// performs the role capability check, so an impermissible operation fails
// before any request is issued. Handlers validate the command, call the
// remote port and translate nothing: remote failures keep their errs
// classification so callers distinguish a lost claim race from a transport
// failure with errors.Is.
package commands
