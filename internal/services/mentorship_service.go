package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dias221467/Alumni_Connect/internal/apperrors"
	"github.com/Dias221467/Alumni_Connect/internal/metrics"
	"github.com/Dias221467/Alumni_Connect/internal/models"
	"github.com/Dias221467/Alumni_Connect/internal/store"
	"github.com/sirupsen/logrus"
)

const (
	sendFailedMessage   = "Error sending request"
	updateFailedMessage = "Failed to update status"
	reconcileAttempts   = 2
)

// MentorshipRemote is the slice of the portal backend the lifecycle needs.
type MentorshipRemote interface {
	ListByStudent(ctx context.Context, studentID int64) ([]models.MentorshipRequest, error)
	ListByAlumni(ctx context.Context, alumniID int64) ([]models.MentorshipRequest, error)
	Send(ctx context.Context, payload models.SendMentorshipRequest) (*models.MentorshipRequest, error)
	UpdateStatus(ctx context.Context, requestID int64, status models.RequestStatus) error
}

// MentorshipService drives the request state machine for one session and
// keeps its RequestStore in line with the portal backend.
type MentorshipService struct {
	remote  MentorshipRemote
	store   *store.RequestStore
	session models.Session
}

// NewMentorshipService creates a new MentorshipService.
func NewMentorshipService(remote MentorshipRemote, requests *store.RequestStore, session models.Session) *MentorshipService {
	return &MentorshipService{
		remote:  remote,
		store:   requests,
		session: session,
	}
}

// Store exposes the requests the service maintains.
func (s *MentorshipService) Store() *store.RequestStore {
	return s.store
}

// Refresh replaces the store with the backend's list for the session's perspective.
func (s *MentorshipService) Refresh(ctx context.Context) error {
	_, err := s.refresh(ctx)
	return err
}

// refresh reports whether the fetched list was applied; it is not when a
// newer fetch, append or confirmed decision got there first.
func (s *MentorshipService) refresh(ctx context.Context) (bool, error) {
	seq := s.store.BeginFetch()

	var (
		requests []models.MentorshipRequest
		err      error
	)
	if s.store.Perspective() == store.Received {
		requests, err = s.remote.ListByAlumni(ctx, s.session.UserID)
	} else {
		requests, err = s.remote.ListByStudent(ctx, s.session.UserID)
	}
	if err != nil {
		logrus.WithError(err).WithField("userID", s.session.UserID).Warn("Failed to fetch mentorship requests")
		return false, err
	}

	return s.store.Replace(seq, requests), nil
}

// Send creates a PENDING request from the session's student to alumniID.
// Callers check the directory for an existing active request first.
func (s *MentorshipService) Send(ctx context.Context, alumniID int64, message string) (*models.MentorshipRequest, error) {
	if strings.TrimSpace(message) == "" {
		metrics.MentorshipSends.WithLabelValues("invalid").Inc()
		return nil, apperrors.NewValidationError("Message cannot be empty")
	}
	if alumniID <= 0 {
		metrics.MentorshipSends.WithLabelValues("invalid").Inc()
		return nil, apperrors.NewValidationError("A valid alumni id is required")
	}
	if alumniID == s.session.UserID {
		metrics.MentorshipSends.WithLabelValues("invalid").Inc()
		return nil, apperrors.NewValidationError("You cannot send a mentorship request to yourself")
	}

	created, err := s.remote.Send(ctx, models.SendMentorshipRequest{
		StudentID: s.session.UserID,
		AlumniID:  alumniID,
		Message:   message,
	})
	if err != nil {
		metrics.MentorshipSends.WithLabelValues("failed").Inc()
		logrus.WithError(err).Warnf("Failed to send mentorship request from %d to %d", s.session.UserID, alumniID)
		return nil, surfaced(err, sendFailedMessage)
	}
	metrics.MentorshipSends.WithLabelValues("sent").Inc()
	logrus.WithFields(logrus.Fields{
		"studentID": s.session.UserID,
		"alumniID":  alumniID,
		"requestID": created.ID,
	}).Info("Mentorship request sent")

	// Without a server id the record cannot be tracked; pull the list instead.
	if created.ID == 0 {
		if err := s.Refresh(context.WithoutCancel(ctx)); err != nil {
			return created, nil
		}
		if latest, ok := s.latestFor(alumniID); ok {
			return &latest, nil
		}
		return created, nil
	}

	if created.Status == "" {
		created.Status = models.StatusPending
	}
	if created.StudentUserID() == 0 {
		created.StudentID = s.session.UserID
	}
	if created.AlumniUserID() == 0 {
		created.AlumniID = alumniID
	}
	if created.Message == "" {
		created.Message = message
	}
	s.store.Append(*created)
	return created, nil
}

// Respond records an alumnus decision. The store shows the decision before
// the backend is called; if the backend does not confirm it, the list is
// refetched and the backend's error text is returned.
func (s *MentorshipService) Respond(ctx context.Context, requestID int64, decision models.RequestStatus) error {
	if !decision.IsDecision() {
		metrics.MentorshipResponses.WithLabelValues("invalid").Inc()
		return apperrors.NewValidationError(fmt.Sprintf("status must be %s or %s", models.StatusAccepted, models.StatusRejected))
	}

	previous, found := s.store.BeginTransition(requestID, decision)
	if !found {
		metrics.MentorshipResponses.WithLabelValues("invalid").Inc()
		return apperrors.NewCustomError(apperrors.ErrRequestNotFound, "Request not found")
	}
	if previous.IsTerminal() {
		metrics.MentorshipResponses.WithLabelValues("noop").Inc()
		return apperrors.NewCustomError(apperrors.ErrAlreadyResponded, "Request already responded to")
	}

	err := s.remote.UpdateStatus(ctx, requestID, decision)
	if err == nil {
		s.store.Confirm(requestID)
		metrics.MentorshipResponses.WithLabelValues("confirmed").Inc()
		logrus.WithFields(logrus.Fields{
			"requestID": requestID,
			"status":    decision,
		}).Info("Mentorship request status updated")
		return nil
	}

	metrics.MentorshipResponses.WithLabelValues("reconciled").Inc()
	logrus.WithError(err).Warnf("Status update for request %d failed, resynchronising", requestID)

	// Fall back to the last status the backend confirmed, then resync.
	s.store.Restore(requestID, previous)
	if !s.store.Closed() {
		s.reconcile(context.WithoutCancel(ctx))
	}
	return surfaced(err, updateFailedMessage)
}

// reconcile refetches after a failed decision. A fetch overtaken by a
// concurrent append or confirmation is retried once.
func (s *MentorshipService) reconcile(ctx context.Context) {
	for attempt := 0; attempt < reconcileAttempts; attempt++ {
		applied, err := s.refresh(ctx)
		if err != nil || applied || s.store.Closed() {
			return
		}
	}
}

// latestFor returns the last indexed request addressed to alumniID.
func (s *MentorshipService) latestFor(alumniID int64) (models.MentorshipRequest, bool) {
	requests := s.store.List()
	for i := len(requests) - 1; i >= 0; i-- {
		if requests[i].Targets(alumniID) {
			return requests[i], true
		}
	}
	return models.MentorshipRequest{}, false
}

// surfaced turns a remote error into the message shown to the user.
func surfaced(err error, fallback string) error {
	class := apperrors.ErrRemoteFailure
	if errors.Is(err, apperrors.ErrRemoteUnavailable) {
		class = apperrors.ErrRemoteUnavailable
	}
	return apperrors.NewCustomError(class, apperrors.Message(err, fallback)).WithCause(err)
}
