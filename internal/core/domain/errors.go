package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidState       = errors.New("invalid lifecycle state")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Donor errors
var (
	ErrDonorNotFound     = errors.New("donor not found")
	ErrDonorNotVerified  = errors.New("donor not verified")
	ErrDonorNotAvailable = errors.New("donor not available")
)

// Blood request errors
var (
	ErrRequestNotFound = errors.New("blood request not found")
)

// Account errors
var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrInvalidRole          = errors.New("invalid role")
)
