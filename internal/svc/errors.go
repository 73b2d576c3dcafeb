package svc

import (
	"errors"
	"fmt"
)

// Error taxonomy surfaced to the api layer. Validation errors are raised
// before any mutation; persistence errors never leave a half-written
// snapshot behind.
var (
	ErrNotFound             = errors.New("not found")
	ErrInsufficientResource = errors.New("insufficient resource")
	ErrInvalidState         = errors.New("invalid state")
	ErrPersistence          = errors.New("persistence failure")
	ErrDataCorruption       = errors.New("data corruption")
)

// CocoonError rejects interaction with a cocooned pet, carrying the
// countdown so the user can be told how long to wait.
type CocoonError struct {
	Kind             string
	RemainingSeconds int64
}

func (e *CocoonError) Error() string {
	return fmt.Sprintf("still in %s cocoon, %d seconds remaining", e.Kind, e.RemainingSeconds)
}

func (e *CocoonError) Unwrap() error {
	return ErrInvalidState
}
