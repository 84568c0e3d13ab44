package domain

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrGamerNotFound      = errors.New("gamer not found")
	ErrGameNotFound       = errors.New("game not found")
	ErrGameTypeNotFound   = errors.New("game type not found")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

var (
	ErrAlreadyAttending = errors.New("gamer is already attending this event")
	ErrUIDTaken         = errors.New("uid is already registered")
	ErrInUse            = errors.New("record is referenced by other records")
)

var (
	ErrMissingIdentity = errors.New("authorization identity is missing")
)

var (
	ErrValidation = errors.New("validation error")
)
