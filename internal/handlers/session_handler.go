package handlers

import (
	"net/http"

	"github.com/Dias221467/Alumni_Connect/internal/session"
	"github.com/Dias221467/Alumni_Connect/pkg/middleware"
)

// SessionHandler ends session workspaces.
type SessionHandler struct {
	Sessions *session.Manager
}

func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{Sessions: sessions}
}

// LogoutHandler closes the caller's workspace; in-flight results are discarded.
func (h *SessionHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSessionFromContext(r.Context())
	if sess == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	h.Sessions.Close(sess.UserID)
	w.WriteHeader(http.StatusNoContent)
}
