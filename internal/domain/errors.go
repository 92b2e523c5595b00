package domain

import "errors"

// Domain errors (no external dependencies). HTTP handlers map these to
// status codes and localized messages.
var (
	ErrNotFound               = errors.New("resource not found")
	ErrValidation             = errors.New("invalid input")
	ErrDuplicate              = errors.New("duplicate resource")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("forbidden")
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrIllegalTransition      = errors.New("illegal status transition")
	ErrConcurrentModification = errors.New("concurrent modification")

	// Company login gate failures. These three must stay distinguishable
	// to the end user and distinct from a bad-password rejection.
	ErrCompanyPending   = errors.New("company awaiting approval")
	ErrCompanyRejected  = errors.New("company registration rejected")
	ErrCompanySuspended = errors.New("company account suspended")
)
