package availability

import (
	"errors"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/pkg/timeofday"
)

var (
	ErrDateMismatch     = errors.New("segment date does not match time slot date")
	ErrInvertedInterval = errors.New("segment start time must be before end time")
	ErrOutOfBounds      = errors.New("segment must lie within the time slot")
	ErrMalformedSlot    = errors.New("time slot has malformed bounds")
)

// IsValidationError reports whether err describes bad caller input rather
// than a storage or infrastructure failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrDateMismatch) ||
		errors.Is(err, ErrInvertedInterval) ||
		errors.Is(err, ErrOutOfBounds) ||
		errors.Is(err, timeofday.ErrInvalidClock) ||
		errors.Is(err, timeofday.ErrInvalidDate)
}
