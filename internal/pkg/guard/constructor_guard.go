// Package guard holds the constructor guard embedded by commands, queries and
// value objects that must only be built through their New... functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. The zero value is
// "not constructed", so a struct literal that skips the constructor fails Validate.
//
// Example usage:
//
//	type RecordPaymentCommand struct {
//	    amount kernel.Money
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewRecordPaymentCommand(amount kernel.Money) (RecordPaymentCommand, error) {
//	    return RecordPaymentCommand{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c RecordPaymentCommand) Validate() error {
//	    return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard was never set by a constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
