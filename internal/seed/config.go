// Package seed generates and submits synthetic training sessions so a
// fresh persistence API has data worth looking at.
package seed

import "time"

// Config controls a seeding run.
type Config struct {
	BaseURL  string
	Sessions int
	Athletes int
	Timeout  time.Duration
	Verbose  bool
}
