// Package guard provides a defensive construction check for commands, queries,
// and value objects. Embedding a ConstructorGuard lets a type detect whether it
// was created through its designated constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// is a zero value and no specific validation error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation, so any struct embedding a guard cannot be used unless it
// went through its constructor.
//
// Example:
//
//	type SubmitQuotationCommand struct {
//	    quotationID kernel.UUID
//	    guard       guard.ConstructorGuard
//	}
//
//	func NewSubmitQuotationCommand(id kernel.UUID) (SubmitQuotationCommand, error) {
//	    return SubmitQuotationCommand{quotationID: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c SubmitQuotationCommand) Validate() error {
//	    return c.guard.Validate(ErrSubmitQuotationCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owner was properly constructed.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
