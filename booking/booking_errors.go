package booking

import "errors"

var (
	// ErrNoSeatsSelected blocks leaving seat selection with nothing picked.
	ErrNoSeatsSelected = errors.New("no seats selected")

	// ErrInterestsRequired blocks submission until at least one
	// interest tag is chosen.
	ErrInterestsRequired = errors.New("at least one interest is required")

	// ErrSubmitInProgress rejects a duplicate submission while the
	// previous one is still in flight.
	ErrSubmitInProgress = errors.New("submission already in progress")

	// ErrWrongStage rejects a transition the current stage does not allow.
	ErrWrongStage = errors.New("operation not allowed in current stage")

	// ErrBookingFailed wraps a partially or fully failed submission.
	// The seats that did book stay booked server-side; the client
	// performs no compensating cancellation.
	ErrBookingFailed = errors.New("booking failed")
)
