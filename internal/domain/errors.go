package domain

import "errors"

// Rejected player actions. All are local no-ops on state; callers map them
// to reason codes. None are fatal.
var (
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrInsufficientCargoSpace = errors.New("insufficient cargo space")
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrInvalidDestination     = errors.New("invalid destination")
	ErrDailyLimitReached      = errors.New("daily limit reached")
	ErrLocationMismatch       = errors.New("location mismatch")
	ErrCapacityExceeded       = errors.New("capacity exceeded")
)
