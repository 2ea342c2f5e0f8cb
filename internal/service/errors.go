package service

import "errors"

// Sentinel errors returned by services and repositories. Handlers map these
// to HTTP statuses; everything else is treated as an internal error.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrDuplicateListing   = errors.New("pet already has an adoption listing")
	ErrPetNotAdoptable    = errors.New("pet is not marked as adoptable")
	ErrPetNotAvailable    = errors.New("pet is not available for playdates")
	ErrEmptyMessage       = errors.New("message requires text or a photo")
	ErrEmptyField         = errors.New("required field is empty")
	ErrSelfThread         = errors.New("cannot open a message thread with yourself")
	ErrDuplicateThread    = errors.New("thread already exists for this user pair")
	ErrInvalidTransition  = errors.New("invalid playdate status transition")
	ErrPastPlaydate       = errors.New("playdate must be scheduled in the future")
)
