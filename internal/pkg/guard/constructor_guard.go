// Package guard provides the constructor-guard pattern used by value objects
// and commands across the codebase. Embedding a ConstructorGuard lets a type
// detect whether it was built through its factory function or left as a zero
// value, so validation can reject improperly constructed instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// was supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its constructor.
// The zero value is "not constructed" and fails validation.
//
// Example:
//
//	type Draft struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewDraft(name string) (Draft, error) {
//	    if name == "" {
//	        return Draft{}, errors.New("name is required")
//	    }
//	    return Draft{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (d Draft) Validate() error {
//	    return d.guard.Validate(ErrDraftIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the "constructed" state. Call it from
// the factory function of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
