package feature

import (
	"cmp"
	"slices"
	"strings"
)

type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// ParseSortOrder defaults to descending, newest first.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(s, string(SortAscending)) {
		return SortAscending
	}
	return SortDescending
}

// Flip returns the opposite direction.
func (o SortOrder) Flip() SortOrder {
	if o == SortAscending {
		return SortDescending
	}
	return SortAscending
}

type SortField string

const (
	SortByDate     SortField = "date"
	SortByUpvotes  SortField = "upvotes"
	SortByPriority SortField = "priority"
	SortByStatus   SortField = "status"
)

// RequestSortFields and TimelineSortFields are the fields each list accepts.
var (
	RequestSortFields  = []SortField{SortByDate, SortByUpvotes}
	TimelineSortFields = []SortField{SortByDate, SortByPriority, SortByStatus}
)

// ParseSortField returns field if allowed, else the first allowed field.
func ParseSortField(s string, allowed []SortField) SortField {
	for _, field := range allowed {
		if strings.EqualFold(s, string(field)) {
			return field
		}
	}
	return allowed[0]
}

// FilterByStatus keeps items whose status is in statuses, preserving order.
// An empty statuses set keeps everything.
func FilterByStatus[T any, S comparable](items []T, statusOf func(T) S, statuses []S) []T {
	if len(statuses) == 0 {
		return slices.Clone(items)
	}
	
	wanted := make(map[S]struct{}, len(statuses))
	for _, s := range statuses {
		wanted[s] = struct{}{}
	}
	
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := wanted[statusOf(item)]; ok {
			out = append(out, item)
		}
	}
	return out
}

func FilterRequests(requests []FeatureRequest, statuses []RequestStatus) []FeatureRequest {
	return FilterByStatus(requests, func(r FeatureRequest) RequestStatus { return r.Status }, statuses)
}

func FilterTimeline(items []TimelineItem, statuses []TimelineStatus) []TimelineItem {
	return FilterByStatus(items, func(i TimelineItem) TimelineStatus { return i.Status }, statuses)
}

// sortMirrored sorts ascending by compare then id; descending is the exact reverse.
func sortMirrored[T any](items []T, compare func(a, b T) int, id func(T) int64, order SortOrder) []T {
	out := slices.Clone(items)
	slices.SortFunc(out, func(a, b T) int {
		if c := compare(a, b); c != 0 {
			return c
		}
		return cmp.Compare(id(a), id(b))
	})
	if order == SortDescending {
		slices.Reverse(out)
	}
	return out
}

// SortRequests orders requests by date or upvotes; other fields fall back to date.
func SortRequests(requests []FeatureRequest, field SortField, order SortOrder) []FeatureRequest {
	compare := func(a, b FeatureRequest) int {
		return a.SubmittedDate.Compare(b.SubmittedDate)
	}
	if field == SortByUpvotes {
		compare = func(a, b FeatureRequest) int {
			return cmp.Compare(a.Upvotes, b.Upvotes)
		}
	}
	
	return sortMirrored(requests, compare, func(r FeatureRequest) int64 { return r.ID }, order)
}

// SortTimeline orders items by date, priority or status; other fields fall back to date.
func SortTimeline(items []TimelineItem, field SortField, order SortOrder) []TimelineItem {
	var compare func(a, b TimelineItem) int
	switch field {
	case SortByPriority:
		compare = func(a, b TimelineItem) int {
			return cmp.Compare(a.Priority, b.Priority)
		}
	case SortByStatus:
		compare = func(a, b TimelineItem) int {
			return cmp.Compare(a.Status.rank(), b.Status.rank())
		}
	default:
		compare = func(a, b TimelineItem) int {
			return a.Date.Compare(b.Date)
		}
	}
	
	return sortMirrored(items, compare, func(i TimelineItem) int64 { return i.ID }, order)
}

// ParseRequestStatuses reads comma separated values, ignoring unknown ones.
func ParseRequestStatuses(values ...string) []RequestStatus {
	var out []RequestStatus
	for _, raw := range splitValues(values) {
		if status := RequestStatus(raw); status.Valid() && !slices.Contains(out, status) {
			out = append(out, status)
		}
	}
	return out
}

// ParseTimelineStatuses reads comma separated values, ignoring unknown ones.
func ParseTimelineStatuses(values ...string) []TimelineStatus {
	var out []TimelineStatus
	for _, raw := range splitValues(values) {
		if status := TimelineStatus(raw); status.Valid() && !slices.Contains(out, status) {
			out = append(out, status)
		}
	}
	return out
}

func splitValues(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(strings.ToLower(part)); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
