package trainer

import "errors"

var (
	// ErrEmailTaken is returned when registering with an email that already
	// has a trainer account.
	ErrEmailTaken = errors.New("a trainer with this email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound is returned when the trainer does not exist.
	ErrNotFound = errors.New("trainer not found")

	// ErrInvalidSchedule is returned when a weekly schedule update fails
	// validation.
	ErrInvalidSchedule = errors.New("invalid weekly schedule")
)
