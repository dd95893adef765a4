// Package dashboard derives the summary cards shown on the landing and dashboard pages.
package dashboard

import (
	"fmt"
	"strings"
	
	"github.com/katatrina/feature-dashboard/internal/feature"
	"github.com/katatrina/feature-dashboard/internal/util"
)

type StatusCount struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

type DevelopmentSummary struct {
	ActiveFeatures     int                    `json:"active_features"`
	StatusBreakdown    []StatusCount          `json:"status_breakdown"`
	BreakdownText      string                 `json:"breakdown_text"`
	LatestRelease      *feature.TimelineItem  `json:"latest_release"`
	DevelopmentCount   int                    `json:"development_count"`
	MilestoneCount     int                    `json:"milestone_count"`
	MilestoneText      string                 `json:"milestone_text"`
	RecentDevelopments []feature.TimelineItem `json:"recent_developments"`
}

type RequestSummary struct {
	TotalRequests   int                     `json:"total_requests"`
	StatusBreakdown []StatusCount           `json:"status_breakdown"`
	TotalUpvotes    int64                   `json:"total_upvotes"`
	MostUpvoted     *feature.FeatureRequest `json:"most_upvoted"`
}

type Summary struct {
	Development DevelopmentSummary `json:"development"`
	Requests    RequestSummary     `json:"requests"`
}

// Summarize builds both summaries; recentLimit caps the recent developments list.
func Summarize(timeline []feature.TimelineItem, requests []feature.FeatureRequest, recentLimit int) Summary {
	return Summary{
		Development: SummarizeDevelopment(timeline, recentLimit),
		Requests:    SummarizeRequests(requests),
	}
}

func SummarizeDevelopment(timeline []feature.TimelineItem, recentLimit int) DevelopmentSummary {
	summary := DevelopmentSummary{
		ActiveFeatures:   len(timeline),
		DevelopmentCount: len(timeline),
	}
	
	counts := make(map[feature.TimelineStatus]int)
	for _, item := range timeline {
		counts[item.Status]++
		if item.Milestone {
			summary.MilestoneCount++
		}
		if item.Status == feature.TimelineStatusCompleted {
			if summary.LatestRelease == nil || item.Date.After(summary.LatestRelease.Date) {
				latest := item
				summary.LatestRelease = &latest
			}
		}
	}
	
	var parts []string
	for _, status := range []feature.TimelineStatus{
		feature.TimelineStatusInProgress,
		feature.TimelineStatusPending,
		feature.TimelineStatusCompleted,
		feature.TimelineStatusDelayed,
	} {
		label := strings.ToLower(status.Style().Label)
		summary.StatusBreakdown = append(summary.StatusBreakdown, StatusCount{
			Status: string(status),
			Label:  status.Style().Label,
			Count:  counts[status],
		})
		if counts[status] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[status], label))
		}
	}
	summary.BreakdownText = strings.Join(parts, ", ")
	summary.MilestoneText = util.FormatCount(summary.MilestoneCount, "marked as milestone", "marked as milestones")
	
	recent := feature.SortTimeline(timeline, feature.SortByDate, feature.SortDescending)
	if recentLimit >= 0 && len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	summary.RecentDevelopments = recent
	
	return summary
}

func SummarizeRequests(requests []feature.FeatureRequest) RequestSummary {
	summary := RequestSummary{TotalRequests: len(requests)}
	
	counts := make(map[feature.RequestStatus]int)
	for _, request := range requests {
		counts[request.Status]++
		summary.TotalUpvotes += request.Upvotes
		if summary.MostUpvoted == nil || request.Upvotes > summary.MostUpvoted.Upvotes {
			top := request
			summary.MostUpvoted = &top
		}
	}
	
	for _, status := range feature.RequestStatuses {
		summary.StatusBreakdown = append(summary.StatusBreakdown, StatusCount{
			Status: string(status),
			Label:  status.Style().Label,
			Count:  counts[status],
		})
	}
	
	return summary
}
