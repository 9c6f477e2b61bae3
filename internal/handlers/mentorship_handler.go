package handlers

import (
	"net/http"

	"github.com/Dias221467/Alumni_Connect/internal/apperrors"
	"github.com/Dias221467/Alumni_Connect/internal/models"
	"github.com/Dias221467/Alumni_Connect/internal/session"
	"github.com/Dias221467/Alumni_Connect/internal/store"
	"github.com/Dias221467/Alumni_Connect/pkg/logger"
)

// MentorshipHandler exposes the request lifecycle of the caller's workspace.
type MentorshipHandler struct {
	Sessions *session.Manager
}

// NewMentorshipHandler creates a new MentorshipHandler.
func NewMentorshipHandler(sessions *session.Manager) *MentorshipHandler {
	return &MentorshipHandler{Sessions: sessions}
}

type requestsView struct {
	Perspective  store.Perspective          `json:"perspective"`
	Requests     []models.MentorshipRequest `json:"requests"`
	Selected     *models.MentorshipRequest  `json:"selected"`
	PendingCount int                        `json:"pendingCount"`
}

type sendPayload struct {
	AlumniID int64  `json:"alumniId" validate:"required,gt=0"`
	Message  string `json:"message" validate:"required"`
}

type respondPayload struct {
	Status string `json:"status" validate:"required,oneof=ACCEPTED REJECTED"`
}

func viewRequests(ws *session.Workspace) requestsView {
	view := requestsView{
		Perspective:  ws.Requests.Perspective(),
		Requests:     ws.Requests.List(),
		PendingCount: ws.Requests.CountByStatus(models.StatusPending),
	}
	if selected, ok := ws.Requests.Selected(); ok {
		view.Selected = &selected
	}
	return view
}

// GetRequestsHandler returns the caller's requests, selection and pending count.
func (h *MentorshipHandler) GetRequestsHandler(w http.ResponseWriter, r *http.Request) {
	ws := workspace(h.Sessions, w, r)
	if ws == nil {
		return
	}
	writeJSON(w, http.StatusOK, viewRequests(ws))
}

// RefreshRequestsHandler refetches the caller's requests from the backend.
func (h *MentorshipHandler) RefreshRequestsHandler(w http.ResponseWriter, r *http.Request) {
	ws := workspace(h.Sessions, w, r)
	if ws == nil {
		return
	}
	if err := ws.Mentorship.Refresh(r.Context()); err != nil {
		http.Error(w, apperrors.Message(err, "Failed to load requests"), apperrors.HTTPStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, viewRequests(ws))
}

// SendRequestHandler lets a student ask an alumnus for mentorship.
func (h *MentorshipHandler) SendRequestHandler(w http.ResponseWriter, r *http.Request) {
	ws := workspace(h.Sessions, w, r)
	if ws == nil {
		return
	}

	var body sendPayload
	if !decodeAndValidate(w, r, &body) {
		return
	}

	if !ws.Directory.CanConnect(body.AlumniID) {
		http.Error(w, apperrors.ErrAlreadyConnected.Error(), http.StatusConflict)
		logger.Log.Warnf("User %d already has an active request to %d", ws.Session.UserID, body.AlumniID)
		return
	}

	created, err := ws.Mentorship.Send(r.Context(), body.AlumniID, body.Message)
	if err != nil {
		writeError(w, err)
		return
	}

	logger.Log.Infof("User %d sent a mentorship request to %d", ws.Session.UserID, body.AlumniID)
	writeJSON(w, http.StatusCreated, created)
}

// RespondHandler lets an alumnus accept or reject a request.
func (h *MentorshipHandler) RespondHandler(w http.ResponseWriter, r *http.Request) {
	ws := workspace(h.Sessions, w, r)
	if ws == nil {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var body respondPayload
	if !decodeAndValidate(w, r, &body) {
		return
	}

	if err := ws.Mentorship.Respond(r.Context(), id, models.RequestStatus(body.Status)); err != nil {
		logger.Log.Warnf("Failed to respond to request %d: %v", id, err)
		writeError(w, err)
		return
	}

	logger.Log.Infof("User %d responded to request %d (%s)", ws.Session.UserID, id, body.Status)
	writeJSON(w, http.StatusOK, viewRequests(ws))
}

// SelectRequestHandler moves the detail view to another request.
func (h *MentorshipHandler) SelectRequestHandler(w http.ResponseWriter, r *http.Request) {
	ws := workspace(h.Sessions, w, r)
	if ws == nil {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if !ws.Requests.Select(id) {
		writeError(w, apperrors.NewCustomError(apperrors.ErrRequestNotFound, "Request not found"))
		return
	}
	writeJSON(w, http.StatusOK, viewRequests(ws))
}
