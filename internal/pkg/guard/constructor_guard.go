// Package guard provides a constructor-enforcement primitive for domain
// objects. Embedding a ConstructorGuard lets an object detect whether it was
// created through its designated constructor or as a bare zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard
// is validated with a nil error, so validation always fails with a meaningful
// message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects, commands, and aggregates are only
// created through their designated constructor functions. The guard holds a
// flag that is only set when NewConstructorGuard is called; a zero-value
// struct fails validation.
//
// Example:
//
//	var ErrFeedbackIsNotConstructed = errors.New("Feedback must be created via NewFeedback")
//
//	type Feedback struct {
//	    rating  int
//	    comment string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewFeedback(rating int, comment string) (Feedback, error) {
//	    if rating < 1 || rating > 5 {
//	        return Feedback{}, errors.New("rating out of range")
//	    }
//	    return Feedback{rating: rating, comment: comment, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (f Feedback) Validate() error {
//	    return f.guard.Validate(ErrFeedbackIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object was created through its
// constructor. Returns nil for constructed objects; for zero values it
// returns validationError, or ErrDefaultConstructorGuard when
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
