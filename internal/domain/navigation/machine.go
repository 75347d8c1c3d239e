// Package navigation coordinates the detail-view round trip: open a session
// detail, pick a swing's video, leave for the player screen, and reopen the
// same detail on return.
//
// Screen focus and dismissal callbacks arrive as discrete events; the machine
// knows nothing about any UI framework. It is driven from a single event loop
// and is not safe for concurrent use.
package navigation

// State identifies where the user is in the detail/player round trip.
type State string

// Machine states.
const (
	StateIdle         State = "idle"
	StateDetailOpen   State = "detail_open"
	StateVideoPending State = "detail_open_video_pending"
	StatePlayerActive State = "player_active"
)

// Intent is the transient record of a deferred navigation. It lives only for
// the duration of one screen transition and is cleared once consumed.
type Intent struct {
	PendingVideo string
	ReopenTarget string
	AutoReopen   bool
}

// SessionLookup reports whether a session id is present in the current
// session list. A nil lookup treats every id as missing.
type SessionLookup func(id string) bool

// TransitionHook observes state changes, e.g. for metrics.
type TransitionHook func(from, to State)

// Machine is the navigation state machine.
type Machine struct {
	state     State
	sessionID string
	videoRef  string
	intent    Intent
	focusLost bool

	lookup SessionLookup
	hook   TransitionHook
}

// Option applies a configuration option to the Machine.
type Option func(*Machine)

// WithSessionLookup sets the lookup used to resolve reopen targets.
func WithSessionLookup(lookup SessionLookup) Option {
	return func(m *Machine) {
		m.lookup = lookup
	}
}

// WithTransitionHook sets an observer for state changes.
func WithTransitionHook(hook TransitionHook) Option {
	return func(m *Machine) {
		m.hook = hook
	}
}

// NewMachine creates a Machine in the Idle state.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{state: StateIdle}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Current returns the current state.
func (m *Machine) Current() State { return m.state }

// SessionID returns the session the detail view is showing, or the reopen
// target while the player is active. Empty when idle.
func (m *Machine) SessionID() string { return m.sessionID }

// VideoRef returns the video the player screen is showing. Empty outside
// PlayerActive.
func (m *Machine) VideoRef() string { return m.videoRef }

// PendingIntent returns a copy of the current navigation intent.
func (m *Machine) PendingIntent() Intent { return m.intent }

func (m *Machine) transition(to State) {
	from := m.state
	m.state = to
	if m.hook != nil && from != to {
		m.hook(from, to)
	}
}

// SelectSession opens the detail view for session id. Selecting while a
// detail is already open switches it; any pending intent is discarded.
func (m *Machine) SelectSession(id string) State {
	if id == "" || m.state == StatePlayerActive {
		return m.state
	}
	m.sessionID = id
	m.videoRef = ""
	m.intent = Intent{}
	m.transition(StateDetailOpen)
	return m.state
}

// SelectSwingVideo records the intent to play videoRef and closes the detail
// presentation. Navigation itself is deferred to DismissalComplete. Arming
// is last-writer-wins: a new selection replaces any previous intent. Swings
// without a video are ignored.
func (m *Machine) SelectSwingVideo(videoRef string) State {
	if m.state != StateDetailOpen || videoRef == "" {
		return m.state
	}
	m.intent = Intent{PendingVideo: videoRef, ReopenTarget: m.sessionID}
	m.transition(StateVideoPending)
	return m.state
}

// DismissalComplete is the post-dismissal hook: it fires once the detail
// view's close animation has finished. Only now does the player navigation
// start; starting earlier conflicts with the host UI's close transition.
// Returns the video to open when a navigation was pending.
func (m *Machine) DismissalComplete() (string, bool) {
	if m.state != StateVideoPending || m.intent.PendingVideo == "" {
		return "", false
	}
	m.videoRef = m.intent.PendingVideo
	m.intent = Intent{ReopenTarget: m.intent.ReopenTarget, AutoReopen: true}
	m.focusLost = false
	m.transition(StatePlayerActive)
	return m.videoRef, true
}

// FocusLost marks that the originating screen lost focus (the player took
// over). A later FocusRegained only reopens after this has happened.
func (m *Machine) FocusLost() {
	if m.state == StatePlayerActive {
		m.focusLost = true
	}
}

// FocusRegained handles the originating screen coming back into focus. On
// return from the player with an armed intent it reopens the remembered
// session's detail view, consuming the intent so a second focus event is a
// no-op. A remembered session missing from the current list resolves to
// Idle, silently.
func (m *Machine) FocusRegained() State {
	if m.state != StatePlayerActive || !m.focusLost || !m.intent.AutoReopen {
		return m.state
	}

	target := m.intent.ReopenTarget
	m.intent = Intent{}
	m.focusLost = false
	m.videoRef = ""

	if target == "" || m.lookup == nil || !m.lookup(target) {
		m.sessionID = ""
		m.transition(StateIdle)
		return m.state
	}
	m.sessionID = target
	m.transition(StateDetailOpen)
	return m.state
}

// Dismiss is the explicit user dismissal (close button or backdrop). Valid
// in any state; clears all pending navigation intent.
func (m *Machine) Dismiss() State {
	m.sessionID = ""
	m.videoRef = ""
	m.intent = Intent{}
	m.focusLost = false
	m.transition(StateIdle)
	return m.state
}
