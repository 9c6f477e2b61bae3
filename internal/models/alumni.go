package models

import "strings"

// AlumniProfile is a directory entry as served by the profile search endpoint.
type AlumniProfile struct {
	ID          int64       `json:"id"`
	User        UserSummary `json:"user"`
	CompanyName string      `json:"companyName"`
	Designation string      `json:"designation"`
	PassOutYear int         `json:"passOutYear"`
	Expertise   string      `json:"expertise"` // comma-delimited tags
}

// UserID returns the account id requests are addressed to.
func (p AlumniProfile) UserID() int64 {
	return p.User.ID
}

// Name returns the display name of the alumnus.
func (p AlumniProfile) Name() string {
	return p.User.Name
}

// ExpertiseTags splits the expertise list, dropping blanks.
func (p AlumniProfile) ExpertiseTags() []string {
	tags := []string{}
	for _, tag := range strings.Split(p.Expertise, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
