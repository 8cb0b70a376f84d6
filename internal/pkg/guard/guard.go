// Package guard provides ConstructorGuard, a marker embedded in commands, queries and
// value objects so that zero-value instances built with a struct literal are rejected.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value went through its constructor.
//
// Example:
//
//	type ClaimTaskCommand struct {
//	    taskID     kernel.UUID
//	    operatorID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func (c ClaimTaskCommand) Validate() error {
//	    return c.guard.Validate(ErrClaimTaskCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
