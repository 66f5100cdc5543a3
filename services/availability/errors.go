package availability

import "errors"

var (
	// ErrStoreUnavailable wraps a failed schedule or reservation read. The
	// resolver performs no retries; callers decide how to recover.
	ErrStoreUnavailable = errors.New("availability store unavailable")

	// ErrInvalidInterval is returned when a proposed interval has
	// start >= end. It is detected before any store call is made.
	ErrInvalidInterval = errors.New("invalid interval: start must be before end")
)
