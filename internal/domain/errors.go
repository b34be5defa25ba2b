package domain

import "errors"

var (
	// Event errors
	ErrMalformedEvent = errors.New("malformed device event")

	// Ledger errors
	ErrNoOpenEntry = errors.New("no open entry for plate")

	// Fee errors
	ErrInvalidInterval = errors.New("exit time precedes entry time")

	// Payment errors
	ErrInsufficientBalance = errors.New("balance does not cover amount due")
	ErrAckTimeout          = errors.New("device acknowledgment timed out")
	ErrAckMismatch         = errors.New("unexpected device acknowledgment")

	// Storage errors
	ErrStorage = errors.New("ledger storage failure")

	// Channel errors
	ErrReadIdle      = errors.New("no line received before deadline")
	ErrChannelClosed = errors.New("device channel closed")
)
