package lifecycle

import (
	"errors"
	"fmt"
)

// package errors
var (
	ErrNotRunning   = errors.New("manager is not running")
	ErrNotReady     = errors.New("subsystems required for loading assets are not live")
	ErrStarted      = errors.New("manager was already started")
	ErrNoDecoder    = errors.New("no decoder registered for the audio container")
	ErrEmptyTitle   = errors.New("app title shouldn't be empty")
	ErrMissingScene = errors.New("no scene given")
)

// InitializationError reports the startup stage that failed.
// Everything acquired before Stage has been released by the time
// it is returned.
type InitializationError struct {
	Stage  Stage
	Reason error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialization failed at stage %s: %v", e.Stage, e.Reason)
}

func (e *InitializationError) Unwrap() error {
	return e.Reason
}

// DecodeError is returned when an asset is missing or can't be decoded
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to load asset %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
