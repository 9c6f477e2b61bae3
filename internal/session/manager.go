package session

import (
	"context"
	"sync"
	"time"

	"github.com/Dias221467/Alumni_Connect/internal/metrics"
	"github.com/Dias221467/Alumni_Connect/internal/models"
	"github.com/sirupsen/logrus"
)

// Manager owns one Workspace per signed-in user.
type Manager struct {
	factory Factory

	mu         sync.Mutex
	workspaces map[int64]*Workspace
}

// NewManager creates a new Manager.
func NewManager(factory Factory) *Manager {
	return &Manager{
		factory:    factory,
		workspaces: make(map[int64]*Workspace),
	}
}

// Get returns the user's workspace, creating and entering it on first use.
// Callers arriving while the initial fetches run wait for them.
// A new token for the same user replaces the old workspace.
func (m *Manager) Get(ctx context.Context, sess models.Session) *Workspace {
	m.mu.Lock()
	ws, ok := m.workspaces[sess.UserID]
	if ok && ws.Session.Token == sess.Token && ws.Session.Role == sess.Role {
		m.mu.Unlock()
		ws.Touch(time.Now())
		if err := ws.WaitEntered(ctx); err != nil {
			logrus.WithError(err).WithField("userID", sess.UserID).Warn("Gave up waiting for workspace to load")
		}
		return ws
	}
	if ok {
		ws.Close()
	}
	ws = NewWorkspace(sess, m.factory(sess))
	m.workspaces[sess.UserID] = ws
	metrics.ActiveSessions.Set(float64(len(m.workspaces)))
	m.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"userID": sess.UserID,
		"role":   sess.Role,
	}).Info("Session workspace opened")
	ws.Enter(ctx)
	return ws
}

// Lookup returns the user's workspace without creating one.
func (m *Manager) Lookup(userID int64) (*Workspace, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ws, ok := m.workspaces[userID]
	return ws, ok
}

// Close ends the user's workspace, e.g. on logout.
func (m *Manager) Close(userID int64) bool {
	m.mu.Lock()
	ws, ok := m.workspaces[userID]
	if ok {
		delete(m.workspaces, userID)
	}
	metrics.ActiveSessions.Set(float64(len(m.workspaces)))
	m.mu.Unlock()

	if ok {
		ws.Close()
		logrus.WithField("userID", userID).Info("Session workspace closed")
	}
	return ok
}

// EvictIdle closes workspaces not touched since now-idle and returns how many it closed.
func (m *Manager) EvictIdle(now time.Time, idle time.Duration) int {
	cutoff := now.Add(-idle)

	m.mu.Lock()
	var stale []*Workspace
	for id, ws := range m.workspaces {
		if ws.LastSeen().Before(cutoff) {
			stale = append(stale, ws)
			delete(m.workspaces, id)
		}
	}
	metrics.ActiveSessions.Set(float64(len(m.workspaces)))
	m.mu.Unlock()

	for _, ws := range stale {
		ws.Close()
	}
	return len(stale)
}

// Len returns the number of open workspaces.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.workspaces)
}
