package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Dias221467/Alumni_Connect/internal/models"
	"github.com/sirupsen/logrus"
)

// MentorshipRepository reaches the mentorship endpoints of the portal backend.
type MentorshipRepository struct {
	client *Client
}

// NewMentorshipRepository creates a new MentorshipRepository.
func NewMentorshipRepository(client *Client) *MentorshipRepository {
	return &MentorshipRepository{client: client}
}

// ListByStudent returns the requests a student has sent, in server order.
func (r *MentorshipRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.MentorshipRequest, error) {
	data, err := r.client.do(ctx, "list_student_requests", http.MethodGet, fmt.Sprintf("/mentorship/student/%d", studentID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent requests: %w", err)
	}
	return decodeList[models.MentorshipRequest]("list_student_requests", data)
}

// ListByAlumni returns the requests addressed to an alumnus, in server order.
func (r *MentorshipRepository) ListByAlumni(ctx context.Context, alumniID int64) ([]models.MentorshipRequest, error) {
	data, err := r.client.do(ctx, "list_alumni_requests", http.MethodGet, fmt.Sprintf("/mentorship/alumni/%d", alumniID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list received requests: %w", err)
	}
	return decodeList[models.MentorshipRequest]("list_alumni_requests", data)
}

// Send creates a request. The returned request has a zero ID when the server
// acknowledged the call without echoing the created record.
func (r *MentorshipRepository) Send(ctx context.Context, payload models.SendMentorshipRequest) (*models.MentorshipRequest, error) {
	data, err := r.client.do(ctx, "send_request", http.MethodPost, "/mentorship/send", payload)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	created := &models.MentorshipRequest{}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, created); err != nil {
			logrus.WithError(err).Debug("Send acknowledged without a request body")
			created = &models.MentorshipRequest{}
		}
	}
	return created, nil
}

// UpdateStatus records an alumnus decision.
func (r *MentorshipRepository) UpdateStatus(ctx context.Context, requestID int64, status models.RequestStatus) error {
	path := fmt.Sprintf("/mentorship/update-status/%d?status=%s", requestID, url.QueryEscape(string(status)))
	if _, err := r.client.do(ctx, "update_status", http.MethodPut, path, nil); err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	return nil
}
