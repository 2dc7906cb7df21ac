package event

import "errors"

var (
	// ErrInvalidType indicates an event type outside start/stop/marker.
	ErrInvalidType = errors.New("invalid event type")
)
