// Package app provides the core service that ties the upstream client, the
// aggregation logic and the navigation state machine together, and owns the
// degraded-mode contracts.
package app

import (
	"context"
	"strings"
	"sync"

	"github.com/denniswu/swinglab/internal/domain/leaderboard"
	"github.com/denniswu/swinglab/internal/domain/navigation"
	"github.com/denniswu/swinglab/internal/domain/session"
	"github.com/denniswu/swinglab/pkg/logger"
	"github.com/denniswu/swinglab/pkg/metrics"
)

// Client is the slice of the persistence API the service depends on.
type Client interface {
	History(ctx context.Context) ([]session.Record, error)
	AthleteHistory(ctx context.Context, name string) ([]session.Record, error)
	Leaderboard(ctx context.Context, key leaderboard.SortKey) ([]leaderboard.Entry, error)
	Submit(ctx context.Context, rec session.Record) (string, error)
	Health(ctx context.Context) error
}

// HistoryResult is the history view plus the degraded-mode notice.
type HistoryResult struct {
	Sessions []session.View `json:"sessions"`
	Fallback bool           `json:"fallback"`
}

// RankedEntry is a leaderboard entry with its position attached. Rank and
// marker are functions of sort order, never stored.
type RankedEntry struct {
	leaderboard.Entry
	Rank   int    `json:"rank"`
	Marker string `json:"marker"`
}

// LeaderboardResult is the ranked board plus the degraded-mode notice. The
// connectivity error detail is surfaced here, unlike the history fallback.
type LeaderboardResult struct {
	Entries  []RankedEntry `json:"entries"`
	Fallback bool          `json:"fallback"`
	Error    string        `json:"error,omitempty"`
}

// NavView is the externally visible navigation state.
type NavView struct {
	State     navigation.State `json:"state"`
	SessionID string           `json:"session_id,omitempty"`
	VideoRef  string           `json:"video_ref,omitempty"`
}

// Service implements the operations the gateway exposes.
type Service struct {
	client Client
	logger logger.Logger

	// snapMu guards the latest history snapshot the reopen lookup runs
	// against. Last response to resolve wins; there is no sequencing token.
	snapMu   sync.RWMutex
	snapshot map[string]struct{}

	// navMu serializes the state machine, which is itself single-threaded.
	navMu sync.Mutex
	nav   *navigation.Machine
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithClient sets the persistence API client.
func WithClient(client Client) Option {
	return func(s *Service) {
		if client != nil {
			s.client = client
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service.
func New(opts ...Option) *Service {
	s := &Service{
		snapshot: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("app")
	}
	s.nav = navigation.NewMachine(
		navigation.WithSessionLookup(s.sessionExists),
		navigation.WithTransitionHook(func(from, to navigation.State) {
			metrics.RecordNavTransition(string(from), string(to))
		}),
	)
	return s
}

// History fetches, aggregates and views all sessions. An unreachable source
// substitutes the five fixed example sessions; the result carries the notice
// so the caller can show it, non-blocking.
func (s *Service) History(ctx context.Context) HistoryResult {
	records, fellBack := s.fetchHistory(ctx)
	s.storeSnapshot(records)
	return HistoryResult{Sessions: session.Views(records), Fallback: fellBack}
}

// AthleteHistory is History filtered to one athlete. The fallback set is
// filtered the same way so the degraded mode stays consistent.
func (s *Service) AthleteHistory(ctx context.Context, name string) HistoryResult {
	records, err := s.clientAthleteHistory(ctx, name)
	if err != nil {
		s.logger.Warn(ctx, "athlete history unavailable, serving fallback data",
			logger.String("athlete", name), logger.Error(err))
		metrics.RecordFallbackActivation("history")
		records = filterByAthlete(session.Fallback(), name)
		return HistoryResult{Sessions: session.Views(records), Fallback: true}
	}
	return HistoryResult{Sessions: session.Views(records)}
}

// Leaderboard fetches the board for the requested sort key. Every call is a
// full recomputation against the source of truth; switching keys never
// re-sorts cached entries. On failure the fixed three-entry board is served
// and the connectivity detail surfaced.
func (s *Service) Leaderboard(ctx context.Context, key leaderboard.SortKey) LeaderboardResult {
	metrics.RecordRankRecompute(string(key))

	entries, err := s.clientLeaderboard(ctx, key)
	result := LeaderboardResult{}
	if err != nil {
		s.logger.Warn(ctx, "leaderboard unavailable, serving fallback data",
			logger.String("sortKey", string(key)), logger.Error(err))
		metrics.RecordFallbackActivation("leaderboard")
		entries = leaderboard.Fallback()
		result.Fallback = true
		result.Error = err.Error()
	}

	result.Entries = make([]RankedEntry, len(entries))
	for i, e := range entries {
		result.Entries[i] = RankedEntry{Entry: e, Rank: i + 1, Marker: leaderboard.Marker(i + 1)}
	}
	metrics.UpdateAthletesRanked(len(entries))
	return result
}

// Submit stores a new session upstream and returns the generated id. The
// aggregation logic never consumes the result.
func (s *Service) Submit(ctx context.Context, rec session.Record) (string, error) {
	if s.client == nil {
		return "", ErrNoClient
	}
	return s.client.Submit(ctx, rec)
}

// UpstreamHealthy probes the persistence API.
func (s *Service) UpstreamHealthy(ctx context.Context) bool {
	if s.client == nil {
		return false
	}
	return s.client.Health(ctx) == nil
}

// SelectSession opens the detail view for a session.
func (s *Service) SelectSession(id string) NavView {
	s.navMu.Lock()
	defer s.navMu.Unlock()
	s.nav.SelectSession(id)
	return s.navView()
}

// SelectSwingVideo records the deferred navigation to a swing's video.
func (s *Service) SelectSwingVideo(videoRef string) NavView {
	s.navMu.Lock()
	defer s.navMu.Unlock()
	s.nav.SelectSwingVideo(videoRef)
	return s.navView()
}

// DismissalComplete is the post-dismissal hook; it returns the video to
// open when a navigation was pending.
func (s *Service) DismissalComplete() (string, bool, NavView) {
	s.navMu.Lock()
	defer s.navMu.Unlock()
	video, ok := s.nav.DismissalComplete()
	return video, ok, s.navView()
}

// DismissDetail is the explicit user dismissal.
func (s *Service) DismissDetail() NavView {
	s.navMu.Lock()
	defer s.navMu.Unlock()
	s.nav.Dismiss()
	return s.navView()
}

// ScreenFocusLost records that the originating screen lost focus.
func (s *Service) ScreenFocusLost() NavView {
	s.navMu.Lock()
	defer s.navMu.Unlock()
	s.nav.FocusLost()
	return s.navView()
}

// ScreenFocusRegained handles the originating screen coming back into
// focus, reopening the remembered detail when armed.
func (s *Service) ScreenFocusRegained() NavView {
	s.navMu.Lock()
	defer s.navMu.Unlock()
	wasPlayer := s.nav.Current() == navigation.StatePlayerActive
	state := s.nav.FocusRegained()
	if wasPlayer && state == navigation.StateIdle {
		metrics.RecordReopenSkip()
	}
	return s.navView()
}

// Navigation returns the current navigation state.
func (s *Service) Navigation() NavView {
	s.navMu.Lock()
	defer s.navMu.Unlock()
	return s.navView()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.snapMu.RLock()
	tracked := len(s.snapshot)
	s.snapMu.RUnlock()

	return map[string]any{
		"sessionsTracked": tracked,
		"navState":        string(s.Navigation().State),
	}
}

func (s *Service) navView() NavView {
	return NavView{
		State:     s.nav.Current(),
		SessionID: s.nav.SessionID(),
		VideoRef:  s.nav.VideoRef(),
	}
}

func (s *Service) fetchHistory(ctx context.Context) ([]session.Record, bool) {
	if s.client == nil {
		metrics.RecordFallbackActivation("history")
		return session.Fallback(), true
	}
	records, err := s.client.History(ctx)
	if err != nil {
		s.logger.Warn(ctx, "history unavailable, serving fallback data", logger.Error(err))
		metrics.RecordFallbackActivation("history")
		return session.Fallback(), true
	}
	return records, false
}

func (s *Service) clientAthleteHistory(ctx context.Context, name string) ([]session.Record, error) {
	if s.client == nil {
		return nil, ErrNoClient
	}
	return s.client.AthleteHistory(ctx, name)
}

func (s *Service) clientLeaderboard(ctx context.Context, key leaderboard.SortKey) ([]leaderboard.Entry, error) {
	if s.client == nil {
		return nil, ErrNoClient
	}
	return s.client.Leaderboard(ctx, key)
}

// storeSnapshot replaces the id set reopen lookups resolve against.
func (s *Service) storeSnapshot(records []session.Record) {
	ids := make(map[string]struct{}, len(records))
	for _, r := range records {
		ids[r.ID] = struct{}{}
	}
	s.snapMu.Lock()
	s.snapshot = ids
	s.snapMu.Unlock()
	metrics.UpdateSessionsTracked(len(ids))
}

func (s *Service) sessionExists(id string) bool {
	s.snapMu.RLock()
	defer s.snapMu.RUnlock()
	_, ok := s.snapshot[id]
	return ok
}

func filterByAthlete(records []session.Record, name string) []session.Record {
	out := make([]session.Record, 0, len(records))
	for _, r := range records {
		if strings.EqualFold(r.AthleteName, name) {
			out = append(out, r)
		}
	}
	return out
}
