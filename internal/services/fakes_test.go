package services

import (
	"context"
	"sync"

	"github.com/Dias221467/Alumni_Connect/internal/apperrors"
	"github.com/Dias221467/Alumni_Connect/internal/models"
)

type fakeMentorshipRemote struct {
	mu          sync.Mutex
	list        []models.MentorshipRequest
	listErr     error
	listCalls   int
	sendResult  *models.MentorshipRequest
	sendErr     error
	sendCalls   int
	lastSend    models.SendMentorshipRequest
	updateErr   map[int64]error
	updateCalls int

	// When set, UpdateStatus reports the id on started and waits on release.
	started chan int64
	release map[int64]chan struct{}

	// When set, list calls signal listStarted and wait on listRelease.
	listStarted chan struct{}
	listRelease chan struct{}
}

func (f *fakeMentorshipRemote) ListByStudent(ctx context.Context, studentID int64) ([]models.MentorshipRequest, error) {
	return f.listed()
}

func (f *fakeMentorshipRemote) ListByAlumni(ctx context.Context, alumniID int64) ([]models.MentorshipRequest, error) {
	return f.listed()
}

func (f *fakeMentorshipRemote) listed() ([]models.MentorshipRequest, error) {
	f.mu.Lock()
	f.listCalls++
	started, release := f.listStarted, f.listRelease
	err := f.listErr
	out := make([]models.MentorshipRequest, len(f.list))
	copy(out, f.list)
	f.mu.Unlock()

	if started != nil {
		select {
		case started <- struct{}{}:
		default:
		}
	}
	if release != nil {
		<-release
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// blockLists makes the next list calls wait until the returned func is called.
func (f *fakeMentorshipRemote) blockLists() (started chan struct{}, release func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listStarted = make(chan struct{}, 1)
	f.listRelease = make(chan struct{})
	ch := f.listRelease
	return f.listStarted, func() { close(ch) }
}

func (f *fakeMentorshipRemote) Send(ctx context.Context, payload models.SendMentorshipRequest) (*models.MentorshipRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sendCalls++
	f.lastSend = payload
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	created := *f.sendResult
	return &created, nil
}

func (f *fakeMentorshipRemote) UpdateStatus(ctx context.Context, requestID int64, status models.RequestStatus) error {
	f.mu.Lock()
	f.updateCalls++
	var wait chan struct{}
	if f.release != nil {
		wait = f.release[requestID]
	}
	started := f.started
	err := f.updateErr[requestID]
	f.mu.Unlock()

	if started != nil {
		started <- requestID
	}
	if wait != nil {
		<-wait
	}
	return err
}

func (f *fakeMentorshipRemote) calls() (list, send, update int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.sendCalls, f.updateCalls
}

type fakeDirectoryRemote struct {
	profiles []models.AlumniProfile
	err      error
}

func (f *fakeDirectoryRemote) Search(ctx context.Context) ([]models.AlumniProfile, error) {
	return f.profiles, f.err
}

type fakeNotificationRemote struct {
	mu            sync.Mutex
	notifications []models.Notification
	loadErr       error
	markErr       error
	markCalls     int

	loadStarted chan struct{}
	loadRelease chan struct{}
}

func (f *fakeNotificationRemote) GetUserNotifications(ctx context.Context, userID int64) ([]models.Notification, error) {
	f.mu.Lock()
	started, release := f.loadStarted, f.loadRelease
	err := f.loadErr
	out := make([]models.Notification, len(f.notifications))
	copy(out, f.notifications)
	f.mu.Unlock()

	if started != nil {
		select {
		case started <- struct{}{}:
		default:
		}
	}
	if release != nil {
		<-release
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (f *fakeNotificationRemote) MarkAllAsRead(ctx context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markCalls++
	return f.markErr
}

func remoteRejection(message string) error {
	return apperrors.NewCustomError(apperrors.ErrRemoteFailure, message).WithStatusCode(400)
}

func remoteUnreachable() error {
	return apperrors.NewCustomError(apperrors.ErrRemoteUnavailable, "")
}
