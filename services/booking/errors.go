package booking

import "errors"

var (
	// ErrSlotUnavailable means the requested interval failed the commit-time
	// availability re-check.
	ErrSlotUnavailable = errors.New("requested time is not available")

	// ErrInvalidDate means the date string could not be parsed as "2006-01-02".
	ErrInvalidDate = errors.New("invalid date: expected YYYY-MM-DD")

	// ErrInvalidTransition means the reservation's current status does not
	// permit the requested transition.
	ErrInvalidTransition = errors.New("invalid reservation status transition")

	// ErrPromoInvalid means the promo code is unknown, expired or exhausted.
	ErrPromoInvalid = errors.New("promotion code is not redeemable")

	// ErrNotAuthorized means the caller does not own the reservation.
	ErrNotAuthorized = errors.New("not authorized for this reservation")
)
