package leaderboard

import "errors"

// Sentinel kinds for leaderboard errors.
var (
	ErrInvalidSortKey = errors.New("invalid sort key")
)
