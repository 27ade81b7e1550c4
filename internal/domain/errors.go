package domain

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrPointNotFound       = errors.New("point not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrApplicationNotFound = errors.New("application not found")
)

var (
	ErrBadToken   = errors.New("malformed callback token")
	ErrValidation = errors.New("validation error")
)
