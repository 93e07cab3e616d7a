package apperror

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNotSeated       = errors.New("connection is not seated in a session")
	ErrSessionFull     = errors.New("session already has two participants")
	ErrCellOutOfRange  = errors.New("cell index is out of range")
	ErrUnknownAction   = errors.New("unknown action")
	ErrInvalidPayload  = errors.New("invalid payload")
	ErrLoopStopped     = errors.New("event loop is stopped")
)
