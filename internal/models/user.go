package models

// Role is the portal role carried by a session.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleAlumni  Role = "ALUMNI"
	RoleAdmin   Role = "ADMIN"
)

// Session identifies the signed-in user a workspace acts for.
type Session struct {
	UserID int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Token  string `json:"-"` // forwarded to the portal backend
}

// IsStudent reports whether the session sees the sent-requests view.
func (s Session) IsStudent() bool {
	return s.Role == RoleStudent
}

// IsAlumni reports whether the session sees the received-requests view.
func (s Session) IsAlumni() bool {
	return s.Role == RoleAlumni
}
