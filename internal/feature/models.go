package feature

import (
	"time"
)

// RequestStatus is the review state of a feature request.
type RequestStatus string

const (
	RequestStatusNew         RequestStatus = "new"
	RequestStatusUnderReview RequestStatus = "under-review"
	RequestStatusPlanned     RequestStatus = "planned"
	RequestStatusRejected    RequestStatus = "rejected"
)

// RequestStatuses lists every request status in board order.
var RequestStatuses = []RequestStatus{
	RequestStatusNew,
	RequestStatusUnderReview,
	RequestStatusPlanned,
	RequestStatusRejected,
}

// TimelineStatus is the development state of a timeline item.
type TimelineStatus string

const (
	TimelineStatusCompleted  TimelineStatus = "completed"
	TimelineStatusInProgress TimelineStatus = "in-progress"
	TimelineStatusPending    TimelineStatus = "pending"
	TimelineStatusDelayed    TimelineStatus = "delayed"
)

// TimelineStatuses lists every timeline status; the order is also the status sort order.
var TimelineStatuses = []TimelineStatus{
	TimelineStatusCompleted,
	TimelineStatusInProgress,
	TimelineStatusPending,
	TimelineStatusDelayed,
}

type FeatureRequest struct {
	ID            int64         `json:"id"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description"`
	SubmittedBy   string        `json:"submitted_by"`
	SubmittedDate time.Time     `json:"submitted_date"`
	Category      string        `json:"category"`
	Upvotes       int64         `json:"upvotes"`
	Status        RequestStatus `json:"status"`
}

// NewFeatureRequest is what the submission form collects.
type NewFeatureRequest struct {
	Title       string
	Description string
	Category    string
	SubmittedBy string
}

type TimelineItem struct {
	ID             int64          `json:"id"`
	Title          string         `json:"title"`
	Status         TimelineStatus `json:"status"`
	Date           time.Time      `json:"date"`
	Description    string         `json:"description"`
	Milestone      bool           `json:"milestone"`
	Reference      string         `json:"reference,omitempty"`
	Priority       int            `json:"priority,omitempty"` // 1..3, 0 when unset
	Arguments      string         `json:"arguments,omitempty"`
	Impact         string         `json:"impact,omitempty"`
	Recommendation string         `json:"recommendation,omitempty"`
}

// Categories offered by the submission form.
var Categories = []string{
	"Data Management",
	"User Interface",
	"Documentation",
	"API Integration",
	"Performance",
	"Security",
	"Analytics",
	"Automation",
	"Other",
}
