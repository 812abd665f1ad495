// Package guard provides the ConstructorGuard pattern used by value objects,
// commands, and queries to ensure instances are only created through their
// designated constructor functions. A zero-value struct fails validation,
// which keeps invariants intact even when a struct is instantiated directly.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied. Validation always fails with a meaningful message even
// if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it in a
// struct and initialize it with NewConstructorGuard inside the constructor;
// Validate then distinguishes constructed instances from zero values.
//
// Example:
//
//	var ErrWindowNotConstructed = errors.New("Window must be created via NewWindow")
//
//	type Window struct {
//	    from, to time.Time
//	    guard    guard.ConstructorGuard
//	}
//
//	func (w Window) Validate() error {
//	    return w.guard.Validate(ErrWindowNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the enclosing object as
// properly constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor, otherwise the supplied validation error (or
// ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
