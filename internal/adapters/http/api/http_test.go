package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/denniswu/swinglab/internal/adapters/http/api"
	"github.com/denniswu/swinglab/internal/app"
	"github.com/denniswu/swinglab/internal/domain/leaderboard"
	"github.com/denniswu/swinglab/internal/domain/navigation"
	"github.com/denniswu/swinglab/internal/domain/session"
	"github.com/denniswu/swinglab/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

// stubDeps answers every handler dependency with canned data and records
// what it was asked for.
type stubDeps struct {
	history     api.HistoryResult
	board       api.LeaderboardResult
	nav         api.NavView
	submitID    string
	submitErr   error
	healthy     bool
	lastAthlete string
	lastKey     leaderboard.SortKey
	lastAction  string
	submitted   []session.Record
}

func (d *stubDeps) History(context.Context) api.HistoryResult { return d.history }

func (d *stubDeps) AthleteHistory(_ context.Context, name string) api.HistoryResult {
	d.lastAthlete = name
	return d.history
}

func (d *stubDeps) Leaderboard(_ context.Context, key leaderboard.SortKey) api.LeaderboardResult {
	d.lastKey = key
	return d.board
}

func (d *stubDeps) Submit(_ context.Context, rec session.Record) (string, error) {
	if d.submitErr != nil {
		return "", d.submitErr
	}
	d.submitted = append(d.submitted, rec)
	return d.submitID, nil
}

func (d *stubDeps) UpstreamHealthy(context.Context) bool { return d.healthy }

func (d *stubDeps) Navigation() api.NavView { return d.nav }

func (d *stubDeps) SelectSession(id string) api.NavView {
	d.lastAction = "select-session:" + id
	return api.NavView{State: navigation.StateDetailOpen, SessionID: id}
}

func (d *stubDeps) SelectSwingVideo(ref string) api.NavView {
	d.lastAction = "select-video:" + ref
	return api.NavView{State: navigation.StateVideoPending, VideoRef: ref}
}

func (d *stubDeps) DismissalComplete() (string, bool, api.NavView) {
	d.lastAction = "dismissal-complete"
	return "videos/a.mp4", true, api.NavView{State: navigation.StatePlayerActive}
}

func (d *stubDeps) DismissDetail() api.NavView {
	d.lastAction = "dismiss"
	return api.NavView{State: navigation.StateIdle}
}

func (d *stubDeps) ScreenFocusLost() api.NavView {
	d.lastAction = "focus-lost"
	return api.NavView{State: navigation.StatePlayerActive}
}

func (d *stubDeps) ScreenFocusRegained() api.NavView {
	d.lastAction = "focus-regained"
	return api.NavView{State: navigation.StateDetailOpen}
}

type stubStats struct{}

func (stubStats) GetStats() map[string]any {
	return map[string]any{"sessionsTracked": 2, "navState": "idle"}
}

func newTestServer(deps *stubDeps) *httptest.Server {
	mux := http.NewServeMux()
	api.NewServer(deps, stubStats{}).Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, url string, body any, v any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	resp, err := http.Post(url, "application/json", &buf)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestHistoryRoutes(t *testing.T) {
	Convey("Given a gateway with one session in history", t, func() {
		deps := &stubDeps{history: api.HistoryResult{
			Sessions: []session.View{{ID: "s1", AthleteName: "陳大文"}},
		}}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When requesting the full history", func() {
			var got api.HistoryResult
			status := getJSON(t, srv.URL+"/training-history", &got)

			Convey("Then the sessions and notice flag come back", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(got.Sessions, ShouldHaveLength, 1)
				So(got.Sessions[0].ID, ShouldEqual, "s1")
				So(got.Fallback, ShouldBeFalse)
			})
		})

		Convey("When requesting a single athlete's history", func() {
			status := getJSON(t, srv.URL+"/training-history/陳大文", nil)

			Convey("Then the athlete name reaches the service", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(deps.lastAthlete, ShouldEqual, "陳大文")
			})
		})

		Convey("When the athlete segment is empty", func() {
			status := getJSON(t, srv.URL+"/training-history/", nil)

			Convey("Then the request is rejected", func() {
				So(status, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When using an unsupported method", func() {
			req, err := http.NewRequest(http.MethodDelete, srv.URL+"/training-history", nil)
			So(err, ShouldBeNil)
			resp, err := http.DefaultClient.Do(req)
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then the route does not exist", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestLeaderboardRoutes(t *testing.T) {
	Convey("Given a gateway with a ranked board", t, func() {
		deps := &stubDeps{board: api.LeaderboardResult{
			Entries: []app.RankedEntry{
				{Entry: leaderboard.Entry{AthleteName: "張小明", AvgScore: 95.2}, Rank: 1, Marker: "🥇"},
			},
		}}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When requesting the board without a sort key", func() {
			var got api.LeaderboardResult
			status := getJSON(t, srv.URL+"/leaderboard", &got)

			Convey("Then it ranks by average score", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(deps.lastKey, ShouldEqual, leaderboard.ByAvgScore)
				So(got.Entries, ShouldHaveLength, 1)
				So(got.Entries[0].Marker, ShouldEqual, "🥇")
			})
		})

		Convey("When requesting an explicit sort key", func() {
			status := getJSON(t, srv.URL+"/leaderboard/bestSingleSpeed", nil)

			Convey("Then that key reaches the service", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(deps.lastKey, ShouldEqual, leaderboard.ByBestSingleSpeed)
			})
		})

		Convey("When requesting an unknown sort key", func() {
			var got map[string]any
			status := getJSON(t, srv.URL+"/leaderboard/swagger", &got)

			Convey("Then the request is rejected with the error code", func() {
				So(status, ShouldEqual, http.StatusBadRequest)
				So(got["code"], ShouldEqual, "invalid_sort_key")
			})
		})
	})
}

func TestSubmitRoute(t *testing.T) {
	Convey("Given a gateway accepting sessions", t, func() {
		deps := &stubDeps{submitID: "65fa12"}
		srv := newTestServer(deps)
		defer srv.Close()

		valid := session.Record{
			ID:          "s9",
			AthleteID:   "user042",
			AthleteName: "陳大文",
			Timestamp:   session.At(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)),
			SwingCount:  5,
			AvgScore:    81,
		}

		Convey("When posting a valid session", func() {
			var got map[string]any
			status := postJSON(t, srv.URL+"/training-history", valid, &got)

			Convey("Then it is stored and the id returned", func() {
				So(status, ShouldEqual, http.StatusCreated)
				So(got["status"], ShouldEqual, "stored")
				So(got["id"], ShouldEqual, "65fa12")
				So(deps.submitted, ShouldHaveLength, 1)
				So(deps.submitted[0].AthleteName, ShouldEqual, "陳大文")
			})
		})

		Convey("When posting a session without an athlete name", func() {
			bad := valid
			bad.AthleteName = ""
			var got map[string]any
			status := postJSON(t, srv.URL+"/training-history", bad, &got)

			Convey("Then the request is rejected", func() {
				So(status, ShouldEqual, http.StatusBadRequest)
				So(got["message"], ShouldContainSubstring, "user_name")
			})
		})

		Convey("When the persistence API is down", func() {
			deps.submitErr = context.DeadlineExceeded
			status := postJSON(t, srv.URL+"/training-history", valid, nil)

			Convey("Then the gateway reports a bad gateway", func() {
				So(status, ShouldEqual, http.StatusBadGateway)
			})
		})
	})
}

func TestNavigationRoutes(t *testing.T) {
	Convey("Given a gateway with an idle navigation machine", t, func() {
		deps := &stubDeps{nav: api.NavView{State: navigation.StateIdle}}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When reading the state", func() {
			var got api.NavView
			status := getJSON(t, srv.URL+"/navigation", &got)

			So(status, ShouldEqual, http.StatusOK)
			So(got.State, ShouldEqual, navigation.StateIdle)
		})

		Convey("When selecting a session", func() {
			var got map[string]any
			status := postJSON(t, srv.URL+"/navigation/select-session",
				map[string]string{"session_id": "s1"}, &got)

			So(status, ShouldEqual, http.StatusOK)
			So(deps.lastAction, ShouldEqual, "select-session:s1")
		})

		Convey("When selecting a session without an id", func() {
			status := postJSON(t, srv.URL+"/navigation/select-session",
				map[string]string{}, nil)

			So(status, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When completing a dismissal with a pending video", func() {
			var got map[string]any
			status := postJSON(t, srv.URL+"/navigation/dismissal-complete", nil, &got)

			So(status, ShouldEqual, http.StatusOK)
			So(got["open_video"], ShouldEqual, "videos/a.mp4")
		})

		Convey("When posting focus transitions", func() {
			So(postJSON(t, srv.URL+"/navigation/focus-lost", nil, nil), ShouldEqual, http.StatusOK)
			So(deps.lastAction, ShouldEqual, "focus-lost")
			So(postJSON(t, srv.URL+"/navigation/focus-regained", nil, nil), ShouldEqual, http.StatusOK)
			So(deps.lastAction, ShouldEqual, "focus-regained")
		})

		Convey("When posting an unknown action", func() {
			var got map[string]any
			status := postJSON(t, srv.URL+"/navigation/teleport", nil, &got)

			So(status, ShouldEqual, http.StatusNotFound)
			So(got["code"], ShouldEqual, "unknown_action")
		})
	})
}

func TestHealthAndStats(t *testing.T) {
	Convey("Given a gateway with a healthy upstream", t, func() {
		deps := &stubDeps{healthy: true}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When probing /health", func() {
			var got map[string]any
			status := getJSON(t, srv.URL+"/health", &got)

			So(status, ShouldEqual, http.StatusOK)
			So(got["status"], ShouldEqual, "ok")
			So(got["upstream"], ShouldEqual, "connected")
		})

		Convey("When scraping /healthz", func() {
			resp, err := http.Get(srv.URL + "/healthz")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})

		Convey("When reading /stats", func() {
			var got map[string]any
			status := getJSON(t, srv.URL+"/stats", &got)

			So(status, ShouldEqual, http.StatusOK)
			So(got["navState"], ShouldEqual, "idle")
		})
	})

	Convey("Given a gateway with an unreachable upstream", t, func() {
		deps := &stubDeps{healthy: false}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When probing /health", func() {
			var got map[string]any
			status := getJSON(t, srv.URL+"/health", &got)

			Convey("Then the gateway still answers ok but reports the upstream", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(got["upstream"], ShouldEqual, "unreachable")
			})
		})
	})
}
