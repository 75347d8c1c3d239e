package leaderboard

import (
	"time"

	"github.com/denniswu/swinglab/internal/domain/session"
)

// Fallback returns the fixed example leaderboard served when the persistence
// API is unreachable. Unlike the history fallback, callers surface the
// connectivity error detail alongside these entries.
func Fallback() []Entry {
	return []Entry{
		{
			AthleteName:     "張小明",
			AvgScore:        95.2,
			BestSingleScore: 99.5,
			BestSingleSpeed: 19.3,
			SessionCount:    5,
			LastTraining:    session.At(time.Date(2025, 1, 19, 14, 30, 0, 0, time.UTC)),
		},
		{
			AthleteName:     "李小華",
			AvgScore:        89.7,
			BestSingleScore: 96.0,
			BestSingleSpeed: 16.5,
			SessionCount:    3,
			LastTraining:    session.At(time.Date(2025, 1, 18, 16, 45, 0, 0, time.UTC)),
		},
		{
			AthleteName:     "王小剛",
			AvgScore:        85.5,
			BestSingleScore: 95.0,
			BestSingleSpeed: 15.8,
			SessionCount:    8,
			LastTraining:    session.At(time.Date(2025, 1, 17, 10, 15, 0, 0, time.UTC)),
		},
	}
}
