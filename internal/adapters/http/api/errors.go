package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrUnknownAction = errors.New("unknown navigation action")
)

func errMissingField(name string) error {
	return fmt.Errorf("%w: missing %s", ErrBadRequest, name)
}
