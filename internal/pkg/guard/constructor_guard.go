// Package guard detects zero-value domain objects that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects, entities and commands so that a
// zero value can be told apart from an instance built by its constructor.
//
// Example:
//
//	type Projection struct {
//	    progress int
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewProjection(progress int) Projection {
//	    return Projection{progress: progress, guard: guard.NewConstructorGuard()}
//	}
//
//	func (p Projection) Validate() error {
//	    return p.guard.Validate(ErrProjectionIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
