// Package api declares HTTP contracts and route registration helpers for
// the gateway.
package api

import (
	"net/http"
	"strings"
)

// NavigationDependencies defines the interface for driving the detail/video
// navigation flow. Calls are serialized by the implementation.
type NavigationDependencies interface {
	Navigation() NavView
	SelectSession(id string) NavView
	SelectSwingVideo(videoRef string) NavView
	DismissalComplete() (string, bool, NavView)
	DismissDetail() NavView
	ScreenFocusLost() NavView
	ScreenFocusRegained() NavView
}

// NavigationHandler handles navigation state requests.
type NavigationHandler struct {
	deps NavigationDependencies
}

// NewNavigationHandler creates a new navigation handler.
func NewNavigationHandler(deps NavigationDependencies) *NavigationHandler {
	return &NavigationHandler{deps: deps}
}

// navActionRequest carries the optional payload of a navigation action.
type navActionRequest struct {
	SessionID string `json:"session_id"`
	VideoRef  string `json:"video_ref"`
}

// navActionResponse is the state after an action. OpenVideo is set only by
// dismissal-complete when a deferred video navigation fires.
type navActionResponse struct {
	Navigation NavView `json:"navigation"`
	OpenVideo  string  `json:"open_video,omitempty"`
}

// HandleGetState handles GET /navigation requests.
func (h *NavigationHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Navigation())
}

// HandlePostAction handles POST /navigation/{action} requests. Actions that
// carry no payload accept an empty body.
func (h *NavigationHandler) HandlePostAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	action := strings.TrimPrefix(r.URL.Path, "/navigation/")
	if action == "" || strings.Contains(action, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	var req navActionRequest
	if r.ContentLength > 0 {
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
	}

	var resp navActionResponse
	switch action {
	case "select-session":
		if strings.TrimSpace(req.SessionID) == "" {
			writeError(w, http.StatusBadRequest, "bad_request", errMissingField("session_id"))
			return
		}
		resp.Navigation = h.deps.SelectSession(req.SessionID)
	case "select-video":
		if strings.TrimSpace(req.VideoRef) == "" {
			writeError(w, http.StatusBadRequest, "bad_request", errMissingField("video_ref"))
			return
		}
		resp.Navigation = h.deps.SelectSwingVideo(req.VideoRef)
	case "dismissal-complete":
		video, ok, view := h.deps.DismissalComplete()
		resp.Navigation = view
		if ok {
			resp.OpenVideo = video
		}
	case "dismiss":
		resp.Navigation = h.deps.DismissDetail()
	case "focus-lost":
		resp.Navigation = h.deps.ScreenFocusLost()
	case "focus-regained":
		resp.Navigation = h.deps.ScreenFocusRegained()
	default:
		writeError(w, http.StatusNotFound, "unknown_action", ErrUnknownAction)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
