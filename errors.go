package mailscout

import "errors"

var (
	// ErrInvalidBatchDelay is returned by ValidateMany when the configured
	// inter-call delay is negative.
	ErrInvalidBatchDelay = errors.New("mailscout: batch delay must not be negative")
)
