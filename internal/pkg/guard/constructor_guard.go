// Package guard implements the constructor-guard pattern used by domain
// objects, commands, and queries to detect zero-value instances that bypassed
// their designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// Embed it as a field and set it with NewConstructorGuard inside the
// constructor; the zero value fails Validate, which distinguishes properly
// built objects from accidental zero-value structs.
//
// Example:
//
//	type Rating struct {
//	    value float64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRating(value float64) (Rating, error) {
//	    if value < 0 || value > 5 {
//	        return Rating{}, errs.NewValueIsOutOfRangeError("rating", value, 0, 5)
//	    }
//	    return Rating{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r Rating) Validate() error {
//	    return r.guard.Validate(ErrRatingIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the enclosing object was built via its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
