// Package leaderboard groups sessions by athlete and ranks the resulting
// aggregate statistics. Entries are derived values: recomputed on every
// fetch, never persisted, identified only by the athlete name.
//
// The persistence API performs the same grouping server-side, so the
// gateway serves pre-aggregated boards and Rank is not on its request
// path. Rank is the library-surface equivalent for callers that hold raw
// session records, and it documents the one aggregation contract both
// sides must agree on.
package leaderboard

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/denniswu/swinglab/internal/domain/session"
)

// Entry is one athlete's aggregate line. Field names mirror the documents
// the persistence API's aggregation endpoint returns.
type Entry struct {
	AthleteName     string       `json:"_id"`
	AvgScore        float64      `json:"avgScore"`
	BestSingleScore float64      `json:"bestSingleScore"`
	BestSingleSpeed float64      `json:"bestSingleSpeed"`
	SessionCount    int          `json:"totalTrainings"`
	LastTraining    session.Time `json:"lastTraining"`
}

// SortKey selects the metric a leaderboard is ordered by.
type SortKey string

// The three selectable sort keys, named as the API spells them.
const (
	ByAvgScore        SortKey = "avgScore"
	ByBestSingleScore SortKey = "bestSingleScore"
	ByBestSingleSpeed SortKey = "bestSingleSpeed"
)

// ParseSortKey validates a sort key from the wire.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case ByAvgScore, ByBestSingleScore, ByBestSingleSpeed:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
}

// Rank groups sessions by athlete name, computes each group's aggregates,
// and orders the groups by key descending. Ties break by athlete name
// ascending so re-ranking is deterministic. Groups are exhaustive and
// disjoint: every input session counts toward exactly one entry.
func Rank(records []session.Record, key SortKey) []Entry {
	groups := make(map[string]*Entry)
	order := make([]string, 0)

	for _, r := range records {
		e, ok := groups[r.AthleteName]
		if !ok {
			e = &Entry{AthleteName: r.AthleteName, LastTraining: r.Timestamp}
			groups[r.AthleteName] = e
			order = append(order, r.AthleteName)
		}
		e.AvgScore += r.AvgScore // running sum; divided once the group is complete
		e.SessionCount++
		if r.BestScore > e.BestSingleScore {
			e.BestSingleScore = r.BestScore
		}
		if r.BestSpeed > e.BestSingleSpeed {
			e.BestSingleSpeed = r.BestSpeed
		}
		if r.Timestamp.After(e.LastTraining.Time) {
			e.LastTraining = r.Timestamp
		}
	}

	entries := make([]Entry, 0, len(groups))
	for _, name := range order {
		e := *groups[name]
		e.AvgScore /= float64(e.SessionCount)
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := metric(entries[i], key), metric(entries[j], key)
		if a != b {
			return a > b
		}
		return entries[i].AthleteName < entries[j].AthleteName
	})
	return entries
}

func metric(e Entry, key SortKey) float64 {
	switch key {
	case ByBestSingleScore:
		return e.BestSingleScore
	case ByBestSingleSpeed:
		return e.BestSingleSpeed
	default:
		return e.AvgScore
	}
}

// Marker names the visual rank marker: medals for the top three, the
// numeric position for everyone else. Purely a function of position,
// never stored.
func Marker(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return strconv.Itoa(rank) + "."
	}
}
