package notification

import (
	"time"
)

// Status is the severity of a notification.
type Status string

const (
	StatusInfo    Status = "info"
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusInfo, StatusSuccess, StatusWarning, StatusError}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	_, ok := statusStyles[s]
	return ok
}

// DefaultDuration is how long a notification stays visible when the caller does not say.
const DefaultDuration = 5000 * time.Millisecond

type Notification struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Status    Status         `json:"status"`
	Duration  *time.Duration `json:"-"`
	CreatedAt time.Time      `json:"created_at"`
}

// DurationMillis returns the requested lifetime in milliseconds, or nil when unset.
func (n Notification) DurationMillis() *int64 {
	if n.Duration == nil {
		return nil
	}
	ms := n.Duration.Milliseconds()
	return &ms
}

// Persistent reports whether the notification never expires on its own.
func (n Notification) Persistent() bool {
	return n.Duration != nil && *n.Duration == 0
}

// NewNotification is the caller-supplied part of a notification.
// A nil Duration means DefaultDuration; zero means keep until dismissed.
type NewNotification struct {
	Title    string
	Message  string
	Status   Status
	Duration *time.Duration
}

// StatusStyle holds how a status is presented in a toast.
type StatusStyle struct {
	Icon  string
	Class string
}

var statusStyles = map[Status]StatusStyle{
	StatusInfo:    {Icon: "info", Class: "toast-info"},
	StatusSuccess: {Icon: "check-circle", Class: "toast-success"},
	StatusWarning: {Icon: "alert-triangle", Class: "toast-warning"},
	StatusError:   {Icon: "x-circle", Class: "toast-error"},
}

// Style returns the presentation for s; unknown statuses fall back to info.
func (s Status) Style() StatusStyle {
	if style, ok := statusStyles[s]; ok {
		return style
	}
	return statusStyles[StatusInfo]
}

// DemoMessages are the canned messages behind the top navigation notification menu.
var DemoMessages = map[Status]string{
	StatusInfo:    "This is an informational message",
	StatusSuccess: "Operation completed successfully",
	StatusWarning: "Please review this warning",
	StatusError:   "An error has occurred",
}
