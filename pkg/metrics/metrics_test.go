package metrics_test

import (
	"testing"

	"github.com/denniswu/swinglab/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetrics(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording domain metrics", func() {
			So(func() {
				metrics.RecordUpstreamFetch("training_history", "ok")
				metrics.RecordUpstreamFetch("leaderboard", "unavailable")
				metrics.RecordUpstreamFetchDuration("training_history", 12.5)
				metrics.RecordFallbackActivation("history")
				metrics.RecordRankRecompute("avgScore")
				metrics.UpdateSessionsTracked(5)
				metrics.UpdateAthletesRanked(3)
				metrics.RecordNavTransition("idle", "detail_open")
				metrics.RecordReopenSkip()
			}, ShouldNotPanic)
		})

		Convey("When recording HTTP and system metrics", func() {
			So(func() {
				metrics.RecordHTTPRequest("training_history", "GET", "200")
				metrics.RecordHTTPRequestDuration("training_history", "GET", "200", 3.2)
				metrics.UpdateSystemMemoryUsage(1 << 20)
				metrics.UpdateSystemGoroutineCount(12)
			}, ShouldNotPanic)
		})

		Convey("Then the custom registry should be gatherable", func() {
			families, err := metrics.GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
