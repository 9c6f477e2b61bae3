package jobs

import (
	"time"

	"github.com/Dias221467/Alumni_Connect/internal/session"
	"github.com/sirupsen/logrus"
)

// SessionSweeper closes workspaces that have seen no traffic for IdleTTL.
type SessionSweeper struct {
	Sessions *session.Manager
	IdleTTL  time.Duration
	now      func() time.Time
}

// NewSessionSweeper creates a new instance of SessionSweeper
func NewSessionSweeper(sessions *session.Manager, idleTTL time.Duration) *SessionSweeper {
	return &SessionSweeper{
		Sessions: sessions,
		IdleTTL:  idleTTL,
		now:      time.Now,
	}
}

// RunSweep evicts idle workspaces and returns how many were closed.
func (s *SessionSweeper) RunSweep() int {
	evicted := s.Sessions.EvictIdle(s.now(), s.IdleTTL)
	if evicted > 0 {
		logrus.WithFields(logrus.Fields{
			"evicted":   evicted,
			"remaining": s.Sessions.Len(),
		}).Info("Idle session sweep completed")
	}
	return evicted
}
