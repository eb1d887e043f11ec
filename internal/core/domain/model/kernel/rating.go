package kernel

import (
	"fmt"
	"math"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

const (
	// MinRatingValue is the lowest rating a customer can give a delivery.
	MinRatingValue = 0.0
	// MaxRatingValue is the highest rating a customer can give a delivery.
	MaxRatingValue = 5.0
)

// ErrRatingIsNotConstructed is returned when validating a Rating that was not
// created via NewRating or ZeroRating.
var ErrRatingIsNotConstructed = errs.NewValueIsRequiredError("Rating must be created via NewRating or ZeroRating")

// Rating is a value object representing a delivery quality score in the
// closed interval [0, 5]. It can only be constructed from a validated float,
// so any Rating held by an aggregate is guaranteed to be in range.
//
// A courier who has never been rated carries ZeroRating; the zero score is a
// legitimate value and is distinct from the invalid zero-value struct, which
// fails Validate.
type Rating struct {
	value float64
	guard guard.ConstructorGuard
}

// NewRating creates a Rating from a raw float.
// Returns an error if the value is NaN, infinite, or outside [0, 5].
func NewRating(value float64) (Rating, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Rating{}, errs.NewValueIsInvalidErrorWithCause("rating",
			fmt.Errorf("%v is not a finite number", value))
	}
	if value < MinRatingValue || value > MaxRatingValue {
		return Rating{}, errs.NewValueIsOutOfRangeError("rating", value, MinRatingValue, MaxRatingValue)
	}

	return Rating{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ZeroRating returns the rating carried by couriers that have not been rated yet.
func ZeroRating() Rating {
	return Rating{
		value: MinRatingValue,
		guard: guard.NewConstructorGuard(),
	}
}

// Value returns the numeric score.
func (r Rating) Value() float64 {
	return r.value
}

// IsEqual compares two ratings by value.
func (r Rating) IsEqual(other Rating) bool {
	return r.value == other.value
}

// Validate checks that the Rating was properly constructed.
// Returns ErrRatingIsNotConstructed for zero-value instances.
func (r Rating) Validate() error {
	return r.guard.Validate(ErrRatingIsNotConstructed)
}
