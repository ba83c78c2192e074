package toastweb

import "errors"

var (
	// ErrInvalidBody is returned for request bodies that cannot be decoded.
	ErrInvalidBody = errors.New("toastweb: invalid request body")

	// ErrInvalidDuration is returned for durations that cannot be parsed.
	ErrInvalidDuration = errors.New("toastweb: invalid duration")
)
