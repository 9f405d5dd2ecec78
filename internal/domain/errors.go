package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound          = errors.New("resource not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameTaken     = errors.New("username already registered")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicate         = errors.New("duplicate resource")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("access denied")
	ErrInsufficientStock = errors.New("insufficient unreserved stock")

	// ErrInvalidTransition is returned when an approval or rejection targets
	// a request or requisition already in a terminal state, or a gate that
	// has already been decided.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrInvariantViolation means a ledger operation would drive a quantity
	// negative. It indicates a sequencing bug upstream, never user error.
	ErrInvariantViolation = errors.New("stock invariant violation")
)
