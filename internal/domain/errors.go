package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrCatererNotFound  = errors.New("caterer not found")
	ErrNGONotFound      = errors.New("ngo not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrProfileNotFound  = errors.New("profile not found")
)

var (
	ErrRoleAlreadySet    = errors.New("role is already assigned")
	ErrNGOAlreadyExists  = errors.New("ngo is already registered")
	ErrAlreadyRequested  = errors.New("booking already requested for this caterer")
	ErrBookingNotPending = errors.New("booking is not in pending status")
	ErrEventNotBookable  = errors.New("event cannot accept booking requests in its current status")
	ErrEventNotOpen      = errors.New("event is already completed")
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("operation not allowed for this user")
)

var (
	ErrValidation = errors.New("validation error")
)
