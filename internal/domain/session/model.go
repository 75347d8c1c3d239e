// Package session models training sessions and derives their presentation
// views: normalized durations, score bands, and the per-session performance
// summary. Records are read-only once retrieved; everything here derives new
// values and never writes back.
package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/denniswu/swinglab/internal/domain/duration"
)

// Layout the training device stamps sessions with: local time, no zone.
const deviceTimeLayout = "2006-01-02T15:04:05"

// Time wraps time.Time to accept both RFC3339 and the device's zone-less
// timestamp format.
type Time struct {
	time.Time
}

// UnmarshalJSON parses RFC3339 first, then the device layout.
func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.Parse(deviceTimeLayout, s)
	if err != nil {
		return fmt.Errorf("unrecognized timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// MarshalJSON emits RFC3339.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339))
}

// At builds a Time from a time.Time. Test and fallback helper.
func At(t time.Time) Time { return Time{Time: t} }

// Swing is a single recorded repetition within a session. It has no
// lifecycle of its own; it is owned by its parent Record.
type Swing struct {
	Score float64 `json:"score"`
	Speed float64 `json:"speed"`
	Video string  `json:"video,omitempty"`
}

// Record is one completed training outing as stored upstream. Field names
// mirror the persistence documents.
type Record struct {
	ID          string            `json:"_id"`
	AthleteID   string            `json:"user_id"`
	AthleteName string            `json:"user_name"`
	Timestamp   Time              `json:"timestamp"`
	Duration    duration.Duration `json:"duration"`
	SwingCount  int               `json:"swing_nums"`
	AvgScore    float64           `json:"avg_score"`
	AvgSpeed    float64           `json:"avg_speed"`
	BestScore   float64           `json:"best_score"`
	BestSpeed   float64           `json:"best_speed"`
	RefSpeed    float64           `json:"ref_speed"`
	Swings      []Swing           `json:"trainings"`
	Advice      string            `json:"advice,omitempty"`
}
