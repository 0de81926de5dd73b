package pickup

import (
	"errors"

	"ewaste/internal/pkg/errs"
	"ewaste/internal/pkg/guard"
)

// ErrFeedbackIsNotConstructed is returned when a Feedback was not created
// through the NewFeedback factory method.
var ErrFeedbackIsNotConstructed = errors.New("Feedback must be created via NewFeedback constructor")

// Feedback is the requester's rating of a completed pickup: a score from
// 1 to 5 and an optional comment. Submitting feedback again overwrites the
// previous value; there is no single-write lock.
type Feedback struct {
	rating  int
	comment string

	guard guard.ConstructorGuard
}

const (
	minRating = 1
	maxRating = 5
)

// NewFeedback creates a feedback value. The rating must be between 1 and 5
// inclusive; the comment is optional.
func NewFeedback(rating int, comment string) (Feedback, error) {
	if rating < minRating || rating > maxRating {
		return Feedback{}, errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}

	return Feedback{
		rating:  rating,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the feedback was created via NewFeedback.
func (f Feedback) Validate() error {
	return f.guard.Validate(ErrFeedbackIsNotConstructed)
}

// Rating returns the score, always within [1, 5].
func (f Feedback) Rating() int {
	return f.rating
}

// Comment returns the optional comment.
func (f Feedback) Comment() string {
	return f.comment
}
