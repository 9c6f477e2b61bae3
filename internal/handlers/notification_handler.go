package handlers

import (
	"net/http"

	"github.com/Dias221467/Alumni_Connect/internal/models"
	"github.com/Dias221467/Alumni_Connect/internal/session"
	"github.com/Dias221467/Alumni_Connect/pkg/logger"
)

type NotificationHandler struct {
	Sessions *session.Manager
}

func NewNotificationHandler(sessions *session.Manager) *NotificationHandler {
	return &NotificationHandler{Sessions: sessions}
}

type notificationsView struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
	ListOpen      bool                  `json:"listOpen"`
	Detail        *models.Event         `json:"detail"`
}

type listPayload struct {
	Open *bool `json:"open" validate:"required"`
}

func viewNotifications(ws *session.Workspace) notificationsView {
	view := notificationsView{
		Notifications: ws.Notifications.Notifications(),
		UnreadCount:   ws.Notifications.UnreadCount(),
		ListOpen:      ws.Notifications.ListOpen(),
	}
	if detail, ok := ws.Notifications.Detail(); ok {
		view.Detail = &detail
	}
	return view
}

// GET /notifications
func (h *NotificationHandler) GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	ws := workspace(h.Sessions, w, r)
	if ws == nil {
		return
	}
	writeJSON(w, http.StatusOK, viewNotifications(ws))
}

// POST /notifications/refresh
func (h *NotificationHandler) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	ws := workspace(h.Sessions, w, r)
	if ws == nil {
		return
	}
	ws.Notifications.Load(r.Context())
	writeJSON(w, http.StatusOK, viewNotifications(ws))
}

// PUT /notifications/read-all
func (h *NotificationHandler) MarkAllReadHandler(w http.ResponseWriter, r *http.Request) {
	ws := workspace(h.Sessions, w, r)
	if ws == nil {
		return
	}
	ws.Notifications.MarkAllRead(r.Context())
	writeJSON(w, http.StatusOK, viewNotifications(ws))
}

// PUT /notifications/list
func (h *NotificationHandler) SetListOpenHandler(w http.ResponseWriter, r *http.Request) {
	ws := workspace(h.Sessions, w, r)
	if ws == nil {
		return
	}
	var body listPayload
	if !decodeAndValidate(w, r, &body) {
		return
	}
	if *body.Open {
		ws.Notifications.OpenList()
	} else {
		ws.Notifications.CloseList()
	}
	writeJSON(w, http.StatusOK, viewNotifications(ws))
}

// POST /notifications/{id}/view
func (h *NotificationHandler) ViewEventDetailHandler(w http.ResponseWriter, r *http.Request) {
	ws := workspace(h.Sessions, w, r)
	if ws == nil {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if _, err := ws.Notifications.ViewEventDetail(r.Context(), id); err != nil {
		logger.Log.Warnf("Cannot open notification %d: %v", id, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewNotifications(ws))
}

// DELETE /notifications/detail
func (h *NotificationHandler) CloseDetailHandler(w http.ResponseWriter, r *http.Request) {
	ws := workspace(h.Sessions, w, r)
	if ws == nil {
		return
	}
	ws.Notifications.CloseDetail()
	writeJSON(w, http.StatusOK, viewNotifications(ws))
}
