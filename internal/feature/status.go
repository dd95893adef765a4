package feature

import (
	"github.com/katatrina/feature-dashboard/internal/util"
)

// StatusStyle is how a status badge is drawn.
type StatusStyle struct {
	Label string
	Class string
	Icon  string
}

var requestStatusStyles = map[RequestStatus]StatusStyle{
	RequestStatusNew:         {Class: "text-purple bg-purple", Icon: "git-pull-request-draft"},
	RequestStatusUnderReview: {Class: "text-yellow bg-yellow", Icon: "alert-circle"},
	RequestStatusPlanned:     {Class: "text-indigo bg-indigo", Icon: "calendar"},
	RequestStatusRejected:    {Class: "text-red bg-red", Icon: "x-circle"},
}

var timelineStatusStyles = map[TimelineStatus]StatusStyle{
	TimelineStatusCompleted:  {Class: "text-green bg-green", Icon: "check-circle"},
	TimelineStatusInProgress: {Class: "text-blue bg-blue", Icon: "clock"},
	TimelineStatusPending:    {Class: "text-gray bg-gray", Icon: "circle"},
	TimelineStatusDelayed:    {Class: "text-red bg-red", Icon: "alert-circle"},
}

var fallbackStyle = StatusStyle{Class: "text-gray bg-gray", Icon: "circle"}

func (s RequestStatus) Valid() bool {
	_, ok := requestStatusStyles[s]
	return ok
}

func (s RequestStatus) Style() StatusStyle {
	style, ok := requestStatusStyles[s]
	if !ok {
		style = fallbackStyle
	}
	style.Label = util.TitleCaseStatus(string(s))
	return style
}

func (s TimelineStatus) Valid() bool {
	_, ok := timelineStatusStyles[s]
	return ok
}

func (s TimelineStatus) Style() StatusStyle {
	style, ok := timelineStatusStyles[s]
	if !ok {
		style = fallbackStyle
	}
	style.Label = util.TitleCaseStatus(string(s))
	return style
}

// rank orders timeline statuses for sorting.
func (s TimelineStatus) rank() int {
	for i, status := range TimelineStatuses {
		if status == s {
			return i
		}
	}
	return len(TimelineStatuses)
}
