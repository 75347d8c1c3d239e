package session

import (
	"time"

	"github.com/denniswu/swinglab/internal/domain/duration"
)

// Fallback returns the fixed example sessions served when the persistence
// API is unreachable. Five literal records, already most-recent-first, so the
// rest of the system stays exercisable offline. Callers are told separately
// that fallback data is in effect.
func Fallback() []Record {
	return []Record{
		{
			ID:          "67632b1e8f9a5c2d1e4f5a6b",
			AthleteID:   "user001",
			AthleteName: "張小明",
			Timestamp:   At(time.Date(2025, 1, 19, 14, 30, 0, 0, time.UTC)),
			Duration:    duration.FromText("0:00:29.554757"),
			SwingCount:  15,
			AvgScore:    85.5,
			AvgSpeed:    12.3,
			BestScore:   95.0,
			BestSpeed:   15.8,
			RefSpeed:    10.0,
			Swings: []Swing{
				{Score: 82.5, Speed: 11.2, Video: "video_1.mp4"},
				{Score: 88.0, Speed: 13.1, Video: "video_2.mp4"},
				{Score: 95.0, Speed: 15.8, Video: "video_3.mp4"},
				{Score: 76.5, Speed: 9.8, Video: "video_4.mp4"},
			},
		},
		{
			ID:          "67632b1e8f9a5c2d1e4f5a6c",
			AthleteID:   "user001",
			AthleteName: "張小明",
			Timestamp:   At(time.Date(2025, 1, 18, 16, 45, 0, 0, time.UTC)),
			Duration:    duration.FromText("0:01:42.123456"),
			SwingCount:  20,
			AvgScore:    92.3,
			AvgSpeed:    14.7,
			BestScore:   98.5,
			BestSpeed:   18.2,
			RefSpeed:    12.0,
			Swings: []Swing{
				{Score: 88.5, Speed: 13.5, Video: "video_5.mp4"},
				{Score: 94.0, Speed: 15.2, Video: "video_6.mp4"},
				{Score: 98.5, Speed: 18.2, Video: "video_7.mp4"},
				{Score: 89.2, Speed: 12.8, Video: "video_8.mp4"},
				{Score: 91.5, Speed: 14.9, Video: "video_9.mp4"},
			},
		},
		{
			ID:          "67632b1e8f9a5c2d1e4f5a6d",
			AthleteID:   "user001",
			AthleteName: "張小明",
			Timestamp:   At(time.Date(2025, 1, 17, 10, 15, 0, 0, time.UTC)),
			Duration:    duration.FromSeconds(150),
			SwingCount:  12,
			AvgScore:    78.9,
			AvgSpeed:    10.5,
			BestScore:   86.5,
			BestSpeed:   13.1,
			RefSpeed:    9.5,
			Swings: []Swing{
				{Score: 75.0, Speed: 9.2, Video: "video_10.mp4"},
				{Score: 81.5, Speed: 11.3, Video: "video_11.mp4"},
				{Score: 86.5, Speed: 13.1, Video: "video_12.mp4"},
				{Score: 72.8, Speed: 8.4, Video: "video_13.mp4"},
			},
		},
		{
			ID:          "67632b1e8f9a5c2d1e4f5a6e",
			AthleteID:   "user001",
			AthleteName: "張小明",
			Timestamp:   At(time.Date(2025, 1, 16, 9, 0, 0, 0, time.UTC)),
			Duration:    duration.FromSeconds(210),
			SwingCount:  18,
			AvgScore:    89.7,
			AvgSpeed:    13.2,
			BestScore:   96.0,
			BestSpeed:   16.5,
			RefSpeed:    11.0,
			Swings: []Swing{
				{Score: 85.5, Speed: 12.1, Video: "video_14.mp4"},
				{Score: 92.0, Speed: 14.8, Video: "video_15.mp4"},
				{Score: 96.0, Speed: 16.5, Video: "video_16.mp4"},
				{Score: 87.2, Speed: 11.9, Video: "video_17.mp4"},
				{Score: 90.8, Speed: 13.7, Video: "video_18.mp4"},
			},
		},
		{
			ID:          "67632b1e8f9a5c2d1e4f5a6f",
			AthleteID:   "user001",
			AthleteName: "張小明",
			Timestamp:   At(time.Date(2025, 1, 15, 20, 30, 0, 0, time.UTC)),
			Duration:    duration.FromSeconds(300),
			SwingCount:  25,
			AvgScore:    95.2,
			AvgSpeed:    15.8,
			BestScore:   99.5,
			BestSpeed:   19.3,
			RefSpeed:    13.5,
			Swings: []Swing{
				{Score: 92.5, Speed: 14.2, Video: "video_19.mp4"},
				{Score: 96.0, Speed: 16.8, Video: "video_20.mp4"},
				{Score: 99.5, Speed: 19.3, Video: "video_21.mp4"},
				{Score: 94.8, Speed: 15.1, Video: "video_22.mp4"},
				{Score: 93.2, Speed: 14.6, Video: "video_23.mp4"},
				{Score: 97.1, Speed: 17.9, Video: "video_24.mp4"},
			},
		},
	}
}
