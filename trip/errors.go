package trip

import "errors"

var (
	// ErrValidation covers client-side input problems: empty destination,
	// missing dates, end date before start date, non-positive day counts.
	ErrValidation = errors.New("invalid trip input")

	// ErrUnavailable covers transport failures against an upstream service
	// (network error, timeout, non-2xx). Retryable by the user.
	ErrUnavailable = errors.New("service unavailable")

	// ErrEmptyItinerary is a semantic failure: the planner answered but
	// produced no usable day plans.
	ErrEmptyItinerary = errors.New("empty itinerary")
)
