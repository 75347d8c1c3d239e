// Package api declares HTTP contracts and route registration helpers for
// the gateway.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/denniswu/swinglab/internal/domain/session"
)

// SubmitDependencies defines the interface for storing new sessions.
type SubmitDependencies interface {
	Submit(ctx context.Context, rec session.Record) (string, error)
}

// SubmitHandler handles session ingest requests.
type SubmitHandler struct {
	deps SubmitDependencies
}

// NewSubmitHandler creates a new submit handler.
func NewSubmitHandler(deps SubmitDependencies) *SubmitHandler {
	return &SubmitHandler{deps: deps}
}

// sessionRequest is the POST /training-history body; it reuses the upstream
// record shape so the gateway stays a passthrough for writes.
type sessionRequest struct {
	session.Record
}

func (s sessionRequest) validate() error {
	switch {
	case strings.TrimSpace(s.AthleteID) == "":
		return errMissingField("user_id")
	case strings.TrimSpace(s.AthleteName) == "":
		return errMissingField("user_name")
	case s.Timestamp.IsZero():
		return errMissingField("timestamp")
	case s.SwingCount < 1:
		return errMissingField("swing_nums")
	}
	return nil
}

type storeResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// HandlePostSession handles POST /training-history requests.
func (h *SubmitHandler) HandlePostSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req sessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	id, err := h.deps.Submit(r.Context(), req.Record)
	if err != nil {
		writeError(w, http.StatusBadGateway, "upstream_unavailable", err)
		return
	}
	writeJSON(w, http.StatusCreated, storeResponse{Status: "stored", ID: id})
}
