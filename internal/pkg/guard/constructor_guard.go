// Package guard provides a marker that tells constructed values apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into aggregates, value objects and commands that must only
// be produced by their constructor. The zero value reports itself as not constructed.
//
// Example:
//
//	var ErrContainerIsNotConstructed = errors.New("Container must be created via NewContainer")
//
//	type Container struct {
//	    id    string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewContainer(id string) *Container {
//	    return &Container{id: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (c *Container) Validate() error {
//	    return c.guard.Validate(ErrContainerIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not produced by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
