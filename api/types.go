package api

import (
	"time"
	
	"github.com/katatrina/feature-dashboard/internal/feature"
	"github.com/katatrina/feature-dashboard/internal/notification"
	"github.com/katatrina/feature-dashboard/internal/util"
)

// NotificationResponse is a toast as returned by the API and rendered by pages.
type NotificationResponse struct {
	ID         string    `json:"id" example:"Vq3kT8aZpQlr8y4j2n"`
	Title      string    `json:"title" example:"Success"`
	Message    string    `json:"message" example:"Operation completed successfully"`
	Status     string    `json:"status" example:"success"`
	DurationMs *int64    `json:"duration_ms,omitempty" example:"5000"`
	CreatedAt  time.Time `json:"created_at" example:"2024-03-01T10:00:00Z"`
	CreatedAgo string    `json:"created_ago" example:"2 seconds ago"`
	Icon       string    `json:"-"`
	Class      string    `json:"-"`
}

func newNotificationResponse(n notification.Notification) NotificationResponse {
	style := n.Status.Style()
	return NotificationResponse{
		ID:         n.ID,
		Title:      n.Title,
		Message:    n.Message,
		Status:     string(n.Status),
		DurationMs: n.DurationMillis(),
		CreatedAt:  n.CreatedAt,
		CreatedAgo: util.FormatRelative(n.CreatedAt),
		Icon:       style.Icon,
		Class:      style.Class,
	}
}

func newNotificationResponses(list []notification.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, newNotificationResponse(n))
	}
	return out
}

// FeatureRequestResponse adds the caller's vote state to a feature request.
type FeatureRequestResponse struct {
	feature.FeatureRequest
	Upvoted bool `json:"upvoted"`
}

type UpvoteResponse struct {
	Request FeatureRequestResponse `json:"request"`
	Upvoted bool                   `json:"upvoted"`
}

type ThemeResponse struct {
	Theme    string `json:"theme" example:"system"`
	Resolved string `json:"resolved" example:"light"`
}
