package leaderboard_test

import (
	"testing"
	"time"

	"github.com/denniswu/swinglab/internal/domain/leaderboard"
	"github.com/denniswu/swinglab/internal/domain/session"
	. "github.com/smartystreets/goconvey/convey"
)

func at(d int) session.Time {
	return session.At(time.Date(2025, 1, d, 12, 0, 0, 0, time.UTC))
}

func sampleSessions() []session.Record {
	return []session.Record{
		{ID: "s1", AthleteName: "A", AvgScore: 80, BestScore: 88, BestSpeed: 14.0, Timestamp: at(10)},
		{ID: "s2", AthleteName: "A", AvgScore: 90, BestScore: 97, BestSpeed: 16.5, Timestamp: at(12)},
		{ID: "s3", AthleteName: "B", AvgScore: 95, BestScore: 96, BestSpeed: 15.0, Timestamp: at(11)},
	}
}

func TestRank(t *testing.T) {
	Convey("Given sessions from two athletes", t, func() {
		records := sampleSessions()

		Convey("When ranking by average score", func() {
			entries := leaderboard.Rank(records, leaderboard.ByAvgScore)

			Convey("Then groups should be exhaustive and disjoint", func() {
				So(len(entries), ShouldEqual, 2)
				total := 0
				for _, e := range entries {
					total += e.SessionCount
				}
				So(total, ShouldEqual, len(records))
			})

			Convey("Then aggregates should be computed per group", func() {
				byName := map[string]leaderboard.Entry{}
				for _, e := range entries {
					byName[e.AthleteName] = e
				}
				So(byName["A"].AvgScore, ShouldAlmostEqual, 85.0)
				So(byName["A"].BestSingleScore, ShouldEqual, 97.0)
				So(byName["A"].BestSingleSpeed, ShouldEqual, 16.5)
				So(byName["A"].LastTraining.Day(), ShouldEqual, 12)
				So(byName["B"].AvgScore, ShouldAlmostEqual, 95.0)
			})

			Convey("Then B should rank above A", func() {
				So(entries[0].AthleteName, ShouldEqual, "B")
				So(entries[1].AthleteName, ShouldEqual, "A")
			})
		})

		Convey("When re-ranking by best single score", func() {
			byAvg := leaderboard.Rank(records, leaderboard.ByAvgScore)
			byBest := leaderboard.Rank(records, leaderboard.ByBestSingleScore)

			Convey("Then the order should flip but not the aggregates", func() {
				So(byBest[0].AthleteName, ShouldEqual, "A")
				So(byBest[1].AthleteName, ShouldEqual, "B")

				byName := map[string]leaderboard.Entry{}
				for _, e := range byAvg {
					byName[e.AthleteName] = e
				}
				for _, e := range byBest {
					So(e.AvgScore, ShouldAlmostEqual, byName[e.AthleteName].AvgScore)
					So(e.BestSingleScore, ShouldEqual, byName[e.AthleteName].BestSingleScore)
					So(e.BestSingleSpeed, ShouldEqual, byName[e.AthleteName].BestSingleSpeed)
				}
			})
		})

		Convey("When re-ranking by best single speed", func() {
			entries := leaderboard.Rank(records, leaderboard.ByBestSingleSpeed)
			So(entries[0].AthleteName, ShouldEqual, "A")
		})

		Convey("When two athletes tie on the sort key", func() {
			tied := []session.Record{
				{AthleteName: "B", AvgScore: 90, Timestamp: at(1)},
				{AthleteName: "A", AvgScore: 90, Timestamp: at(2)},
			}
			entries := leaderboard.Rank(tied, leaderboard.ByAvgScore)

			Convey("Then athlete name ascending should break the tie", func() {
				So(entries[0].AthleteName, ShouldEqual, "A")
				So(entries[1].AthleteName, ShouldEqual, "B")
			})
		})

		Convey("When the input is empty", func() {
			So(leaderboard.Rank(nil, leaderboard.ByAvgScore), ShouldBeEmpty)
		})
	})
}

func TestParseSortKey(t *testing.T) {
	Convey("Given sort key strings", t, func() {
		for _, valid := range []string{"avgScore", "bestSingleScore", "bestSingleSpeed"} {
			key, err := leaderboard.ParseSortKey(valid)
			So(err, ShouldBeNil)
			So(string(key), ShouldEqual, valid)
		}

		Convey("Then unknown keys should be rejected", func() {
			_, err := leaderboard.ParseSortKey("swingCount")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestMarker(t *testing.T) {
	Convey("Given rank positions", t, func() {
		So(leaderboard.Marker(1), ShouldEqual, "🥇")
		So(leaderboard.Marker(2), ShouldEqual, "🥈")
		So(leaderboard.Marker(3), ShouldEqual, "🥉")
		So(leaderboard.Marker(4), ShouldEqual, "4.")
		So(leaderboard.Marker(42), ShouldEqual, "42.")
	})
}

func TestFallback(t *testing.T) {
	Convey("Given the fallback leaderboard", t, func() {
		entries := leaderboard.Fallback()

		Convey("Then it should hold the three documented entries in order", func() {
			So(len(entries), ShouldEqual, 3)
			So(entries[0].AthleteName, ShouldEqual, "張小明")
			So(entries[0].AvgScore, ShouldEqual, 95.2)
			So(entries[1].AthleteName, ShouldEqual, "李小華")
			So(entries[2].AthleteName, ShouldEqual, "王小剛")
		})
	})
}
