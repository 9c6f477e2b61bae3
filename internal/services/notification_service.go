package services

import (
	"context"
	"sync"

	"github.com/Dias221467/Alumni_Connect/internal/apperrors"
	"github.com/Dias221467/Alumni_Connect/internal/metrics"
	"github.com/Dias221467/Alumni_Connect/internal/models"
	"github.com/sirupsen/logrus"
)

// NotificationRemote serves a recipient's notification feed.
type NotificationRemote interface {
	GetUserNotifications(ctx context.Context, userID int64) ([]models.Notification, error)
	MarkAllAsRead(ctx context.Context, userID int64) error
}

// NotificationService tracks the session user's notifications and their
// read state. Every remote failure here is logged and swallowed.
type NotificationService struct {
	remote  NotificationRemote
	session models.Session

	mu            sync.RWMutex
	notifications []models.Notification
	listOpen      bool
	detail        *models.Event
	loadSeq       uint64
	appliedSeq    uint64
	closed        bool
}

func NewNotificationService(remote NotificationRemote, session models.Session) *NotificationService {
	return &NotificationService{
		remote:        remote,
		session:       session,
		notifications: []models.Notification{},
	}
}

// Load replaces the list with the backend's feed. A failed fetch keeps the previous list.
func (s *NotificationService) Load(ctx context.Context) {
	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	s.mu.Unlock()

	notifications, err := s.remote.GetUserNotifications(ctx, s.session.UserID)
	if err != nil {
		metrics.NotificationFailures.WithLabelValues("load").Inc()
		logrus.WithError(err).Warnf("Failed to load notifications for user %d", s.session.UserID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || seq <= s.appliedSeq {
		return
	}
	s.appliedSeq = seq
	s.notifications = notifications
}

// Notifications returns a copy of the current list.
func (s *NotificationService) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// UnreadCount counts notifications not yet read.
func (s *NotificationService) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, notif := range s.notifications {
		if !notif.Read {
			n++
		}
	}
	return n
}

// MarkAllRead flags everything read locally, then tells the backend once.
// A backend failure does not undo the local flags. Loads begun earlier are
// dropped so they cannot bring unread flags back.
func (s *NotificationService) MarkAllRead(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
	s.appliedSeq = s.loadSeq
	s.mu.Unlock()

	if err := s.remote.MarkAllAsRead(ctx, s.session.UserID); err != nil {
		metrics.NotificationFailures.WithLabelValues("mark_all_read").Inc()
		logrus.WithError(err).Warnf("Failed to mark notifications read for user %d", s.session.UserID)
	}
}

// ViewEventDetail closes the list, opens the event of the given notification
// and marks every notification read.
func (s *NotificationService) ViewEventDetail(ctx context.Context, notificationID int64) (*models.Event, error) {
	s.mu.Lock()
	var event *models.Event
	found := false
	for _, notif := range s.notifications {
		if notif.ID == notificationID {
			found = true
			event = notif.Event
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return nil, apperrors.NewCustomError(apperrors.ErrNotificationNotFound, "Notification not found")
	}
	if event == nil {
		s.mu.Unlock()
		return nil, apperrors.NewCustomError(apperrors.ErrNotEventTyped, "Notification has no event details")
	}

	detail := *event
	s.listOpen = false
	s.detail = &detail
	s.mu.Unlock()

	s.MarkAllRead(ctx)

	out := detail
	return &out, nil
}

// OpenList shows the notification list.
func (s *NotificationService) OpenList() {
	s.mu.Lock()
	s.listOpen = true
	s.mu.Unlock()
}

// CloseList hides the notification list.
func (s *NotificationService) CloseList() {
	s.mu.Lock()
	s.listOpen = false
	s.mu.Unlock()
}

func (s *NotificationService) ListOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listOpen
}

// Detail returns the event shown in the detail view, if any.
func (s *NotificationService) Detail() (models.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.detail == nil {
		return models.Event{}, false
	}
	return *s.detail, true
}

// CloseDetail dismisses the event detail view.
func (s *NotificationService) CloseDetail() {
	s.mu.Lock()
	s.detail = nil
	s.mu.Unlock()
}

// Close detaches the service from its session; late loads are discarded.
func (s *NotificationService) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
