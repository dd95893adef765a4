package feature

import (
	"errors"
	"fmt"
	"sync"
	"time"
	
	"github.com/katatrina/feature-dashboard/internal/util"
	"github.com/katatrina/feature-dashboard/internal/validator"
)

var (
	ErrRequestNotFound      = errors.New("feature request not found")
	ErrTimelineItemNotFound = errors.New("timeline item not found")
	ErrMissingField         = validator.ErrRequired
)

// Store keeps the feature board and timeline in memory.
// Feature requests are mutable; timeline items are read-only.
type Store struct {
	mu       sync.RWMutex
	requests []FeatureRequest
	upvoters map[int64]map[string]bool
	timeline []TimelineItem
	now      func() time.Time
}

type StoreOption func(*Store)

// WithClock replaces time.Now for submitted dates.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore builds a store over copies of the given data.
func NewStore(requests []FeatureRequest, timeline []TimelineItem, opts ...StoreOption) *Store {
	s := &Store{
		requests: append([]FeatureRequest(nil), requests...),
		upvoters: make(map[int64]map[string]bool),
		timeline: append([]TimelineItem(nil), timeline...),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	
	return s
}

// NewSeededStore builds a store holding the built-in mock data.
func NewSeededStore(opts ...StoreOption) *Store {
	return NewStore(SeedRequests(), SeedTimeline(), opts...)
}

func (s *Store) ListRequests() []FeatureRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	
	return append([]FeatureRequest(nil), s.requests...)
}

func (s *Store) GetRequest(id int64) (FeatureRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	
	i := s.indexOf(id)
	if i < 0 {
		return FeatureRequest{}, ErrRequestNotFound
	}
	return s.requests[i], nil
}

func (s *Store) ListTimeline() []TimelineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	
	return append([]TimelineItem(nil), s.timeline...)
}

func (s *Store) GetTimelineItem(id int64) (TimelineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	
	for _, item := range s.timeline {
		if item.ID == id {
			return item, nil
		}
	}
	return TimelineItem{}, ErrTimelineItemNotFound
}

// SubmitRequest appends a new request with status new and no upvotes.
// Every field must be present; content is not otherwise validated.
func (s *Store) SubmitRequest(input NewFeatureRequest) (FeatureRequest, error) {
	if err := checkRequired(input); err != nil {
		return FeatureRequest{}, err
	}
	
	s.mu.Lock()
	defer s.mu.Unlock()
	
	id := s.nextID()
	request := FeatureRequest{
		ID:            id,
		Title:         input.Title,
		Slug:          util.GenerateSlug(input.Title, id),
		Description:   input.Description,
		SubmittedBy:   input.SubmittedBy,
		SubmittedDate: truncateToDay(s.now()),
		Category:      input.Category,
		Upvotes:       0,
		Status:        RequestStatusNew,
	}
	s.requests = append(s.requests, request)
	
	return request, nil
}

// ToggleUpvote adds the voter's upvote, or takes it back if already given.
// It returns the updated request and whether the voter now upvotes it.
func (s *Store) ToggleUpvote(id int64, voterID string) (FeatureRequest, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	i := s.indexOf(id)
	if i < 0 {
		return FeatureRequest{}, false, ErrRequestNotFound
	}
	
	voters, ok := s.upvoters[id]
	if !ok {
		voters = make(map[string]bool)
		s.upvoters[id] = voters
	}
	
	upvoted := !voters[voterID]
	if upvoted {
		voters[voterID] = true
		s.requests[i].Upvotes++
	} else {
		delete(voters, voterID)
		if s.requests[i].Upvotes > 0 {
			s.requests[i].Upvotes--
		}
	}
	
	return s.requests[i], upvoted, nil
}

// HasUpvoted reports whether voterID currently upvotes the request.
func (s *Store) HasUpvoted(id int64, voterID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	
	return s.upvoters[id][voterID]
}

func (s *Store) indexOf(id int64) int {
	for i, request := range s.requests {
		if request.ID == id {
			return i
		}
	}
	return -1
}

// nextID is one past the highest id in use, so ids stay unique after edits.
func (s *Store) nextID() int64 {
	var highest int64
	for _, request := range s.requests {
		if request.ID > highest {
			highest = request.ID
		}
	}
	return highest + 1
}

func checkRequired(input NewFeatureRequest) error {
	fields := []struct {
		name  string
		value string
	}{
		{"title", input.Title},
		{"description", input.Description},
		{"category", input.Category},
		{"submitted_by", input.SubmittedBy},
	}
	
	var errs []error
	for _, field := range fields {
		if err := validator.ValidateRequired(field.value); err != nil {
			errs = append(errs, fmt.Errorf("%s %w", field.name, err))
		}
	}
	return errors.Join(errs...)
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
