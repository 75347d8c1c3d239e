package history

import "errors"

// Sentinel kinds for upstream errors.
var (
	// ErrSourceUnavailable marks any failure to obtain a usable response
	// from the persistence API. Callers recover by substituting the fixed
	// example data; it is never fatal.
	ErrSourceUnavailable = errors.New("persistence API unavailable")
)
