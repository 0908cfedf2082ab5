// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries so that zero values built without their constructor
// fail validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was built by a constructor.
// The zero value is "not constructed".
//
// Go cannot forbid struct literals of exported types, so value objects,
// commands and queries embed a guard, set it in their constructor and check
// it in Validate. A zero value that slipped past the constructor then fails
// every handler with the owner's own error instead of carrying empty ids or
// a missing principal into the domain.
//
// Example:
//
//	var ErrClearCartCommandIsNotConstructed = errors.New(
//	    "ClearCartCommand must be created via NewClearCartCommand constructor",
//	)
//
//	type ClearCartCommand struct {
//	    principal identity.Principal
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewClearCartCommand(p identity.Principal) (ClearCartCommand, error) {
//	    if err := p.Validate(); err != nil {
//	        return ClearCartCommand{}, err
//	    }
//	    return ClearCartCommand{principal: p, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ClearCartCommand) Validate() error {
//	    return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
//	}
//
// Handlers call Validate first:
//
//	if err := cmd.Validate(); err != nil {
//	    return err // ClearCartCommand{} ends here
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not created by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
