package types

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNoResultsFound = errors.New("no results found")

	ErrEmptyQuery          = fmt.Errorf("%w: query cannot be empty", ErrInvalidRequest)
	ErrUnknownCity         = fmt.Errorf("%w: invalid city name", ErrInvalidRequest)
	ErrNoPlaces            = fmt.Errorf("%w: no places found for query", ErrNoResultsFound)
	ErrSelectionOutOfRange = fmt.Errorf("%w: not enough places for selection policy", ErrNoResultsFound)
)

// ServiceError reports a failed call to an external provider.
type ServiceError struct {
	Provider string
	Op       string
	Err      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }
