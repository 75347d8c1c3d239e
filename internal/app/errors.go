package app

import "errors"

// ErrNoClient is returned when an operation needs the persistence API but
// the service was built without a client.
var ErrNoClient = errors.New("no persistence client configured")
