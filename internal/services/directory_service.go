package services

import (
	"context"
	"strings"
	"sync"

	"github.com/Dias221467/Alumni_Connect/internal/models"
	"github.com/Dias221467/Alumni_Connect/internal/store"
	"github.com/sirupsen/logrus"
)

const defaultSuggestLimit = 5

// mentorshipCategories are the domains offered by the find-a-mentor filter.
var mentorshipCategories = []string{
	"Software Development",
	"Data Science",
	"Product Management",
	"Finance",
	"Marketing",
	"Consulting",
	"Research",
	"Design",
}

// DirectoryRemote serves the alumni directory.
type DirectoryRemote interface {
	Search(ctx context.Context) ([]models.AlumniProfile, error)
}

// DirectoryFilter narrows the directory. Zero values match everything.
type DirectoryFilter struct {
	Query    string // case-insensitive, any of name, company, designation
	Category string // substring of designation or expertise
}

// DirectoryEntry is an alumnus together with the acting student's relationship to them.
type DirectoryEntry struct {
	Profile    models.AlumniProfile  `json:"profile"`
	Status     *models.RequestStatus `json:"status"`
	CanConnect bool                  `json:"canConnect"`
}

// DirectoryService holds the directory snapshot and derives relationship
// status from the session's RequestStore on every call.
type DirectoryService struct {
	remote   DirectoryRemote
	requests *store.RequestStore
	session  models.Session

	mu       sync.RWMutex
	profiles []models.AlumniProfile
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(remote DirectoryRemote, requests *store.RequestStore, session models.Session) *DirectoryService {
	return &DirectoryService{
		remote:   remote,
		requests: requests,
		session:  session,
		profiles: []models.AlumniProfile{},
	}
}

// Load replaces the snapshot. The acting user's own profile is left out.
// On failure the previous snapshot stays in place.
func (s *DirectoryService) Load(ctx context.Context) error {
	profiles, err := s.remote.Search(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Alumni directory fetch failed")
		return err
	}

	others := make([]models.AlumniProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.UserID() != s.session.UserID {
			others = append(others, p)
		}
	}

	s.mu.Lock()
	s.profiles = others
	s.mu.Unlock()
	return nil
}

// Profiles returns the snapshot.
func (s *DirectoryService) Profiles() []models.AlumniProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AlumniProfile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// Categories lists the category filter values.
func (s *DirectoryService) Categories() []string {
	out := make([]string, len(mentorshipCategories))
	copy(out, mentorshipCategories)
	return out
}

// StatusFor returns the status of the most recently indexed request to
// alumniID, or nil when the student has never asked them.
func (s *DirectoryService) StatusFor(alumniID int64) *models.RequestStatus {
	return statusIn(s.requests.List(), alumniID)
}

// CanConnect reports whether a new request to alumniID is allowed.
func (s *DirectoryService) CanConnect(alumniID int64) bool {
	status := s.StatusFor(alumniID)
	return status == nil || !status.IsActive()
}

// Entries filters the snapshot and projects relationship status onto each
// remaining alumnus.
func (s *DirectoryService) Entries(filter DirectoryFilter) []DirectoryEntry {
	requests := s.requests.List()
	profiles := s.Profiles()

	query := strings.ToLower(filter.Query)
	entries := make([]DirectoryEntry, 0, len(profiles))
	for _, p := range profiles {
		if !matchesQuery(p, query) || !matchesCategory(p, filter.Category) {
			continue
		}
		status := statusIn(requests, p.UserID())
		entries = append(entries, DirectoryEntry{
			Profile:    p,
			Status:     status,
			CanConnect: status == nil || !status.IsActive(),
		})
	}
	return entries
}

// Suggest returns up to limit alumni whose name or company contains query.
func (s *DirectoryService) Suggest(query string, limit int) []models.AlumniProfile {
	if limit <= 0 {
		limit = defaultSuggestLimit
	}
	query = strings.ToLower(query)

	out := []models.AlumniProfile{}
	for _, p := range s.Profiles() {
		if len(out) == limit {
			break
		}
		if strings.Contains(strings.ToLower(p.Name()), query) ||
			strings.Contains(strings.ToLower(p.CompanyName), query) {
			out = append(out, p)
		}
	}
	return out
}

func statusIn(requests []models.MentorshipRequest, alumniID int64) *models.RequestStatus {
	var status *models.RequestStatus
	for i := range requests {
		if requests[i].Targets(alumniID) {
			s := requests[i].Status
			status = &s
		}
	}
	return status
}

func matchesQuery(p models.AlumniProfile, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name()), query) ||
		strings.Contains(strings.ToLower(p.CompanyName), query) ||
		strings.Contains(strings.ToLower(p.Designation), query)
}

func matchesCategory(p models.AlumniProfile, category string) bool {
	if category == "" {
		return true
	}
	return strings.Contains(p.Designation, category) || strings.Contains(p.Expertise, category)
}
