package session

import (
	"context"
	"sync"
	"time"

	"github.com/Dias221467/Alumni_Connect/internal/models"
	"github.com/Dias221467/Alumni_Connect/internal/repository"
	"github.com/Dias221467/Alumni_Connect/internal/services"
	"github.com/Dias221467/Alumni_Connect/internal/store"
	"github.com/sirupsen/logrus"
)

// Workspace bundles the engine components owned by one signed-in user.
type Workspace struct {
	Session       models.Session
	Requests      *store.RequestStore
	Mentorship    *services.MentorshipService
	Directory     *services.DirectoryService
	Notifications *services.NotificationService

	mu       sync.Mutex
	lastSeen time.Time

	enterOnce sync.Once
	entered   chan struct{}
}

// Remotes groups the backend dependencies of a workspace.
type Remotes struct {
	Mentorship    services.MentorshipRemote
	Directory     services.DirectoryRemote
	Notifications services.NotificationRemote
}

// Factory builds the backend dependencies for a session.
type Factory func(sess models.Session) Remotes

// HTTPFactory returns a Factory whose repositories authenticate as the session.
func HTTPFactory(client *repository.Client) Factory {
	return func(sess models.Session) Remotes {
		c := client.WithToken(sess.Token)
		return Remotes{
			Mentorship:    repository.NewMentorshipRepository(c),
			Directory:     repository.NewAlumniRepository(c),
			Notifications: repository.NewNotificationRepository(c),
		}
	}
}

// NewWorkspace wires the components for sess. Alumni see received requests,
// everyone else sees the requests they sent.
func NewWorkspace(sess models.Session, remotes Remotes) *Workspace {
	perspective := store.Sent
	if sess.IsAlumni() {
		perspective = store.Received
	}
	requests := store.NewRequestStore(perspective)

	return &Workspace{
		Session:       sess,
		Requests:      requests,
		Mentorship:    services.NewMentorshipService(remotes.Mentorship, requests, sess),
		Directory:     services.NewDirectoryService(remotes.Directory, requests, sess),
		Notifications: services.NewNotificationService(remotes.Notifications, sess),
		lastSeen:      time.Now(),
		entered:       make(chan struct{}),
	}
}

// Enter performs the fetches that happen when a user opens the portal.
// Failures are logged; each component keeps whatever state it had.
// Only the first call fetches.
func (w *Workspace) Enter(ctx context.Context) {
	w.enterOnce.Do(func() {
		defer close(w.entered)
		w.enter(ctx)
	})
}

// WaitEntered blocks until the initial fetches are done or ctx ends.
func (w *Workspace) WaitEntered(ctx context.Context) error {
	select {
	case <-w.entered:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Workspace) enter(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		if err := w.Mentorship.Refresh(ctx); err != nil {
			logrus.WithError(err).WithField("userID", w.Session.UserID).Warn("Initial request fetch failed")
		}
	}()
	go func() {
		defer wg.Done()
		if err := w.Directory.Load(ctx); err != nil {
			logrus.WithError(err).WithField("userID", w.Session.UserID).Warn("Initial directory fetch failed")
		}
	}()
	go func() {
		defer wg.Done()
		w.Notifications.Load(ctx)
	}()
	wg.Wait()
}

// Touch records activity on the workspace.
func (w *Workspace) Touch(now time.Time) {
	w.mu.Lock()
	w.lastSeen = now
	w.mu.Unlock()
}

// LastSeen returns the time of the last recorded activity.
func (w *Workspace) LastSeen() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSeen
}

// Close detaches every component; responses arriving afterwards are dropped.
func (w *Workspace) Close() {
	w.Requests.Close()
	w.Notifications.Close()
}
