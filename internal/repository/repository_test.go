package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dias221467/Alumni_Connect/internal/apperrors"
	"github.com/Dias221467/Alumni_Connect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api/", 2*time.Second)
}

func TestListByStudentDecodesNestedParties(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/mentorship/student/7", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		io.WriteString(w, `[
			{"id":1,"alumni":{"id":5,"name":"Ada","company":"Acme"},"message":"hi","status":"PENDING","createdAt":"2024-05-01T10:15:30"},
			{"id":2,"alumniId":6,"studentId":7,"message":"yo","status":"REJECTED","createdAt":"2024-05-02T08:00:00Z"}
		]`)
	})

	reqs, err := NewMentorshipRepository(client.WithToken("tok")).ListByStudent(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, reqs, 2)

	assert.True(t, reqs[0].Targets(5))
	assert.Equal(t, int64(5), reqs[0].AlumniUserID())
	assert.Equal(t, models.StatusPending, reqs[0].Status)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 15, 30, 0, time.UTC), reqs[0].CreatedAt.Time)

	assert.True(t, reqs[1].Targets(6))
	assert.False(t, reqs[1].Targets(5))
	assert.Equal(t, int64(7), reqs[1].StudentUserID())
}

func TestListByAlumniTreatsNullAsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/mentorship/alumni/5", r.URL.Path)
		io.WriteString(w, "null")
	})

	reqs, err := NewMentorshipRepository(client).ListByAlumni(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, reqs)
	assert.Empty(t, reqs)
}

func TestSendPostsPayloadAndReturnsCreated(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/mentorship/send", r.URL.Path)
		var body models.SendMentorshipRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.SendMentorshipRequest{StudentID: 7, AlumniID: 5, Message: "hello"}, body)
		io.WriteString(w, `{"id":42,"studentId":7,"alumniId":5,"message":"hello","status":"PENDING"}`)
	})

	created, err := NewMentorshipRepository(client).Send(context.Background(), models.SendMentorshipRequest{StudentID: 7, AlumniID: 5, Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, models.StatusPending, created.Status)
}

func TestSendToleratesPlainTextAcknowledgement(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "Request sent")
	})

	created, err := NewMentorshipRepository(client).Send(context.Background(), models.SendMentorshipRequest{StudentID: 7, AlumniID: 5, Message: "hello"})
	require.NoError(t, err)
	assert.Zero(t, created.ID)
}

func TestUpdateStatusSurfacesServerText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/mentorship/update-status/1", r.URL.Path)
		assert.Equal(t, "ACCEPTED", r.URL.Query().Get("status"))
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, "Already responded\n")
	})

	err := NewMentorshipRepository(client).UpdateStatus(context.Background(), 1, models.StatusAccepted)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrRemoteFailure))
	assert.Equal(t, "Already responded", apperrors.Message(err, "fallback"))

	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, http.StatusConflict, custom.StatusCode)
}

func TestErrorTextReadsJSONEnvelope(t *testing.T) {
	assert.Equal(t, "Request not found", errorText([]byte(`{"status":404,"message":"Request not found"}`)))
	assert.Equal(t, "Bad Request", errorText([]byte(`{"error":"Bad Request"}`)))
	assert.Equal(t, "", errorText([]byte("  ")))
}

func TestUnreachableBackendIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	err := NewMentorshipRepository(NewClient(srv.URL, time.Second)).UpdateStatus(context.Background(), 1, models.StatusRejected)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrRemoteUnavailable))
	assert.Equal(t, "fallback", apperrors.Message(err, "fallback"))
}

func TestNotificationsAcceptEitherIDKey(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/notifications/3":
			io.WriteString(w, `[
				{"notificationId":10,"message":"New event","read":false,"event":{"eventName":"Meetup","eventLocation":"Hall A","eventDateTime":"2024-06-01T18:00:00","eventDescription":"Alumni meetup"}},
				{"id":11,"message":"Welcome","read":true}
			]`)
		case r.Method == http.MethodPut && r.URL.Path == "/api/notifications/3/read-all":
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	repo := NewNotificationRepository(client)
	items, err := repo.GetUserNotifications(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(10), items[0].ID)
	assert.True(t, items[0].IsEvent())
	assert.Equal(t, "Meetup", items[0].Event.EventName)
	assert.Equal(t, int64(11), items[1].ID)
	assert.False(t, items[1].IsEvent())

	assert.NoError(t, repo.MarkAllAsRead(context.Background(), 3))
}

func TestAlumniSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/alumni/profile/search", r.URL.Path)
		io.WriteString(w, `[{"id":1,"user":{"id":5,"name":"Ada"},"companyName":"Acme","designation":"Data Science Lead","passOutYear":2015,"expertise":"ML, Python ,"}]`)
	})

	profiles, err := NewAlumniRepository(client).Search(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, int64(5), profiles[0].UserID())
	assert.Equal(t, "Ada", profiles[0].Name())
	assert.Equal(t, []string{"ML", "Python"}, profiles[0].ExpertiseTags())
}

func TestAlumniSearchDecodesLargeDirectory(t *testing.T) {
	profiles := make([]models.AlumniProfile, 4000)
	for i := range profiles {
		profiles[i] = models.AlumniProfile{
			ID:          int64(i + 1),
			User:        models.UserSummary{ID: int64(i + 100), Name: fmt.Sprintf("Alumnus %d", i)},
			CompanyName: "Some Company With A Reasonably Long Name",
			Designation: "Senior Staff Engineer, Platform Infrastructure",
			PassOutYear: 2010,
			Expertise:   "Career Guidance, Technical Skills, Interview Preparation, Networking",
		}
	}
	body, err := json.Marshal(profiles)
	require.NoError(t, err)
	require.Greater(t, len(body), 1<<20)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	})

	got, err := NewAlumniRepository(client).Search(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 4000)
	assert.Equal(t, "Alumnus 3999", got[3999].Name())
}

func TestLongErrorBodyIsTruncated(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, strings.Repeat("x", 2*maxErrorBody))
	})

	_, err := NewAlumniRepository(client).Search(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrRemoteFailure))
	assert.LessOrEqual(t, len(apperrors.Message(err, "")), maxErrorBody)
}

func TestMalformedListIsRemoteFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"oops":true}`)
	})

	_, err := NewAlumniRepository(client).Search(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrRemoteFailure))
}
