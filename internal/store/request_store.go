package store

import (
	"sync"

	"github.com/Dias221467/Alumni_Connect/internal/models"
)

// Perspective says whose requests a store holds.
type Perspective string

const (
	// Sent holds the requests a student has sent.
	Sent Perspective = "sent"
	// Received holds the requests addressed to an alumnus.
	Received Perspective = "received"
)

// RequestStore keeps the ordered mentorship requests of one actor. Order is
// exactly the order records were received or appended in; duplicates are kept.
//
// Optimistic writes are tracked until settled so that a wholesale Replace
// keeps showing decisions whose remote confirmation is still in flight.
// After Close every mutation is ignored.
type RequestStore struct {
	mu          sync.RWMutex
	perspective Perspective
	requests    []models.MentorshipRequest
	optimistic  map[int64]models.RequestStatus
	selectedID  int64
	fetchSeq    uint64
	appliedSeq  uint64
	closed      bool
}

// NewRequestStore creates an empty store for the given perspective.
func NewRequestStore(perspective Perspective) *RequestStore {
	return &RequestStore{
		perspective: perspective,
		requests:    []models.MentorshipRequest{},
		optimistic:  make(map[int64]models.RequestStatus),
	}
}

func (s *RequestStore) Perspective() Perspective {
	return s.perspective
}

// List returns a copy of the requests in store order.
func (s *RequestStore) List() []models.MentorshipRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MentorshipRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// Len returns the number of held requests.
func (s *RequestStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.requests)
}

// Get returns the last indexed request with the given id.
func (s *RequestStore) Get(id int64) (models.MentorshipRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.requests[i], true
	}
	return models.MentorshipRequest{}, false
}

// Append adds a request at the end. Fetches begun before the append no
// longer apply, since their lists cannot contain it.
func (s *RequestStore) Append(req models.MentorshipRequest) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.requests = append(s.requests, req)
	s.appliedSeq = s.fetchSeq
	s.autoSelect()
	return true
}

// BeginFetch reserves a sequence number for a list fetch. Pass it to Replace
// once the fetch resolves.
func (s *RequestStore) BeginFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchSeq++
	return s.fetchSeq
}

// Replace swaps in an authoritative list. A fetch is dropped unless it began
// after the last applied fetch and after the last local append or confirmed
// decision. Unsettled optimistic writes are laid back on top of the new list.
func (s *RequestStore) Replace(seq uint64, requests []models.MentorshipRequest) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || seq <= s.appliedSeq {
		return false
	}
	s.appliedSeq = seq

	next := make([]models.MentorshipRequest, len(requests))
	copy(next, requests)
	for i := range next {
		if status, ok := s.optimistic[next[i].ID]; ok {
			next[i].Status = status
		}
	}
	s.requests = next

	if s.selectedID != 0 && s.indexOf(s.selectedID) < 0 {
		s.selectedID = 0
	}
	s.autoSelect()
	return true
}

// ApplyOptimistic rewrites the status of every entry with the given id and
// remembers the write until Settle.
func (s *RequestStore) ApplyOptimistic(id int64, status models.RequestStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	found := false
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests[i].Status = status
			found = true
		}
	}
	if found {
		s.optimistic[id] = status
	}
	return found
}

// BeginTransition atomically checks and applies a decision. It reports the
// status the request had before the call; when that status is terminal, or
// the request is unknown, nothing is written.
func (s *RequestStore) BeginTransition(id int64, status models.RequestStatus) (previous models.RequestStatus, found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if s.closed || i < 0 {
		return "", false
	}
	previous = s.requests[i].Status
	if previous.IsTerminal() {
		return previous, true
	}
	for j := range s.requests {
		if s.requests[j].ID == id {
			s.requests[j].Status = status
		}
	}
	s.optimistic[id] = status
	return previous, true
}

// Restore puts a status back without recording it as optimistic.
func (s *RequestStore) Restore(id int64, status models.RequestStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	delete(s.optimistic, id)
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests[i].Status = status
		}
	}
}

// Settle forgets the optimistic write for id; the entry keeps its current status.
func (s *RequestStore) Settle(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.optimistic, id)
}

// Confirm settles a write the backend accepted. Fetches begun before the
// confirmation are dropped so they cannot revert it.
func (s *RequestStore) Confirm(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.optimistic, id)
	if !s.closed {
		s.appliedSeq = s.fetchSeq
	}
}

// InFlight reports whether an optimistic write for id awaits settlement.
func (s *RequestStore) InFlight(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.optimistic[id]
	return ok
}

// Select marks the request shown in the detail view.
func (s *RequestStore) Select(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(id) < 0 {
		return false
	}
	s.selectedID = id
	return true
}

// Selected returns the detail-view projection. It is read from the list, so
// optimistic writes and refetches show up in it without extra bookkeeping.
func (s *RequestStore) Selected() (models.MentorshipRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedID == 0 {
		return models.MentorshipRequest{}, false
	}
	if i := s.indexOf(s.selectedID); i >= 0 {
		return s.requests[i], true
	}
	return models.MentorshipRequest{}, false
}

// CountByStatus counts requests currently in the given status.
func (s *RequestStore) CountByStatus(status models.RequestStatus) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, r := range s.requests {
		if r.Status == status {
			n++
		}
	}
	return n
}

// Close detaches the store from its session; later results are discarded.
func (s *RequestStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *RequestStore) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

func (s *RequestStore) indexOf(id int64) int {
	for i := len(s.requests) - 1; i >= 0; i-- {
		if s.requests[i].ID == id {
			return i
		}
	}
	return -1
}

// autoSelect picks the first received request when nothing is selected.
func (s *RequestStore) autoSelect() {
	if s.perspective == Received && s.selectedID == 0 && len(s.requests) > 0 {
		s.selectedID = s.requests[0].ID
	}
}
