package entities

import "errors"

var (
	// ErrValidation marks input the user can correct: an unknown option
	// token, an unparsable price, an incomplete session.
	ErrValidation = errors.New("validation error")

	// ErrRateUnavailable means a required exchange rate could not be
	// fetched. The request may be retried.
	ErrRateUnavailable = errors.New("exchange rate unavailable")

	ErrPersistence = errors.New("persistence error")

	// ErrUnauthorized is returned to callers outside the admin allow-list.
	// Transports must not reveal it to the caller.
	ErrUnauthorized = errors.New("unauthorized")

	ErrOrderNotFound           = errors.New("order not found")
	ErrRateNotFound            = errors.New("rate not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrNoSession               = errors.New("no active session")
)
