package models

// RequestStatus is the lifecycle state of a mentorship request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusAccepted RequestStatus = "ACCEPTED"
	StatusRejected RequestStatus = "REJECTED"
)

// IsTerminal reports whether no further transition is allowed.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// IsActive reports whether the status blocks a new request for the same pair.
func (s RequestStatus) IsActive() bool {
	return s == StatusPending || s == StatusAccepted
}

// IsDecision reports whether an alumnus may respond with this status.
func (s RequestStatus) IsDecision() bool {
	return s == StatusAccepted || s == StatusRejected
}

// UserSummary is the embedded party object some server responses carry.
type UserSummary struct {
	ID      int64  `json:"id"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Company string `json:"company,omitempty"`
}

// MentorshipRequest binds one student to one alumnus.
type MentorshipRequest struct {
	ID        int64         `json:"id"`
	StudentID int64         `json:"studentId,omitempty"`
	AlumniID  int64         `json:"alumniId,omitempty"`
	Student   *UserSummary  `json:"student,omitempty"` // present when the server expands parties
	Alumni    *UserSummary  `json:"alumni,omitempty"`
	Message   string        `json:"message"`
	Status    RequestStatus `json:"status"`
	CreatedAt Timestamp     `json:"createdAt"`
}

// Targets reports whether the request is addressed to the given alumnus user.
func (r MentorshipRequest) Targets(alumniUserID int64) bool {
	if r.Alumni != nil && r.Alumni.ID == alumniUserID {
		return true
	}
	return r.AlumniID == alumniUserID
}

// AlumniUserID returns the alumnus id, preferring the embedded party object.
func (r MentorshipRequest) AlumniUserID() int64 {
	if r.Alumni != nil && r.Alumni.ID != 0 {
		return r.Alumni.ID
	}
	return r.AlumniID
}

// StudentUserID returns the student id, preferring the embedded party object.
func (r MentorshipRequest) StudentUserID() int64 {
	if r.Student != nil && r.Student.ID != 0 {
		return r.Student.ID
	}
	return r.StudentID
}

// SendMentorshipRequest is the body of POST /mentorship/send.
type SendMentorshipRequest struct {
	StudentID int64  `json:"studentId"`
	AlumniID  int64  `json:"alumniId"`
	Message   string `json:"message"`
}
