package session

import (
	"sort"

	"github.com/denniswu/swinglab/internal/domain/score"
)

// Advice shown when a session carries none of its own.
const defaultAdvice = "持續保持訓練，專注於揮棒技巧和速度提升。"

// Display layout for session timestamps.
const displayTimeLayout = "2006/01/02 15:04"

// Aggregate orders sessions most-recent-first. The sort is stable: sessions
// with equal timestamps keep their input order. The input slice is not
// modified.
func Aggregate(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp.Time)
	})
	return out
}

// Summary is the three-part qualitative judgment of a session plus the
// advice line.
type Summary struct {
	Performance string `json:"performance"`
	Intensity   string `json:"intensity"`
	Speed       string `json:"speed"`
	Advice      string `json:"advice"`
}

// SwingView is a swing prepared for presentation.
type SwingView struct {
	Index    int     `json:"index"`
	Score    float64 `json:"score"`
	Speed    float64 `json:"speed"`
	Video    string  `json:"video,omitempty"`
	HasVideo bool    `json:"has_video"`
}

// View is a session with all derived display values attached.
type View struct {
	ID            string      `json:"id"`
	AthleteID     string      `json:"athlete_id"`
	AthleteName   string      `json:"athlete_name"`
	Timestamp     Time        `json:"timestamp"`
	TimeDisplay   string      `json:"time_display"`
	Duration      string      `json:"duration"`
	SwingCount    int         `json:"swing_count"`
	AvgScore      float64     `json:"avg_score"`
	AvgScoreBand  string      `json:"avg_score_band"`
	AvgScoreColor string      `json:"avg_score_color"`
	AvgSpeed      float64     `json:"avg_speed"`
	BestScore     float64     `json:"best_score"`
	BestScoreBand string      `json:"best_score_band"`
	BestColor     string      `json:"best_score_color"`
	BestSpeed     float64     `json:"best_speed"`
	Summary       Summary     `json:"summary"`
	Swings        []SwingView `json:"swings,omitempty"`
}

// BuildView derives the presentation values for one session.
func BuildView(r Record) View {
	avgBand := score.Classify(r.AvgScore)
	bestBand := score.Classify(r.BestScore)

	advice := r.Advice
	if advice == "" {
		advice = defaultAdvice
	}

	swings := make([]SwingView, len(r.Swings))
	for i, s := range r.Swings {
		swings[i] = SwingView{
			Index:    i + 1,
			Score:    s.Score,
			Speed:    s.Speed,
			Video:    s.Video,
			HasVideo: s.Video != "",
		}
	}

	return View{
		ID:            r.ID,
		AthleteID:     r.AthleteID,
		AthleteName:   r.AthleteName,
		Timestamp:     r.Timestamp,
		TimeDisplay:   r.Timestamp.Format(displayTimeLayout),
		Duration:      r.Duration.Display(),
		SwingCount:    r.SwingCount,
		AvgScore:      r.AvgScore,
		AvgScoreBand:  string(avgBand),
		AvgScoreColor: avgBand.Color(),
		AvgSpeed:      r.AvgSpeed,
		BestScore:     r.BestScore,
		BestScoreBand: string(bestBand),
		BestColor:     bestBand.Color(),
		BestSpeed:     r.BestSpeed,
		Summary: Summary{
			Performance: avgBand.Verdict(),
			Intensity:   score.ClassifyIntensity(r.SwingCount).Label(),
			Speed:       score.ClassifySpeed(r.AvgSpeed, r.RefSpeed).Label(),
			Advice:      advice,
		},
		Swings: swings,
	}
}

// Views aggregates records and builds a view for each, most-recent-first.
func Views(records []Record) []View {
	ordered := Aggregate(records)
	views := make([]View, len(ordered))
	for i, r := range ordered {
		views[i] = BuildView(r)
	}
	return views
}
