package notification

import (
	"sync"
	"time"
	
	"github.com/katatrina/feature-dashboard/internal/event"
	"github.com/katatrina/feature-dashboard/internal/util"
	"github.com/rs/zerolog/log"
)

// Broadcaster receives registry changes so open pages can update live.
type Broadcaster interface {
	Broadcast(event event.Event)
}

// Registry holds the current transient notifications in insertion order.
// It is safe for concurrent use.
type Registry struct {
	mu            sync.Mutex
	notifications []Notification
	
	scheduler       Scheduler
	broadcaster     Broadcaster
	defaultDuration time.Duration
	now             func() time.Time
}

type Option func(*Registry)

// WithDefaultDuration overrides DefaultDuration.
func WithDefaultDuration(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.defaultDuration = d
		}
	}
}

// WithBroadcaster publishes every change to b.
func WithBroadcaster(b Broadcaster) Option {
	return func(r *Registry) {
		r.broadcaster = b
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

func NewRegistry(scheduler Scheduler, opts ...Option) *Registry {
	r := &Registry{
		notifications:   make([]Notification, 0),
		scheduler:       scheduler,
		defaultDuration: DefaultDuration,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	
	return r
}

// Add stores a new notification and, unless its duration is zero, schedules its removal.
func (r *Registry) Add(input NewNotification) Notification {
	now := r.now()
	n := Notification{
		ID:        util.GenerateNotificationID(now),
		Title:     input.Title,
		Message:   input.Message,
		Status:    input.Status,
		CreatedAt: now,
	}
	if input.Duration != nil {
		d := *input.Duration
		n.Duration = &d
	}
	
	r.mu.Lock()
	r.notifications = append(r.notifications, n)
	r.mu.Unlock()
	
	r.publish(event.EventTypeNotificationAdded, n)
	
	if !n.Persistent() {
		r.scheduleRemoval(n.ID, r.lifetime(n))
	}
	
	return n
}

// Remove deletes the notification with the given id. Unknown ids are ignored.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	removed := false
	for i, n := range r.notifications {
		if n.ID == id {
			r.notifications = append(r.notifications[:i:i], r.notifications[i+1:]...)
			removed = true
			break
		}
	}
	r.mu.Unlock()
	
	if removed {
		r.publish(event.EventTypeNotificationRemoved, map[string]string{"id": id})
	}
}

// Clear drops every notification.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.notifications = make([]Notification, 0)
	r.mu.Unlock()
	
	r.publish(event.EventTypeNotificationsClear, nil)
}

// List returns a copy of the current notifications in display order.
func (r *Registry) List() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	
	out := make([]Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

// Get returns the notification with the given id.
func (r *Registry) Get(id string) (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	
	for _, n := range r.notifications {
		if n.ID == id {
			return n, true
		}
	}
	return Notification{}, false
}

// lifetime treats a missing or negative duration as the default.
func (r *Registry) lifetime(n Notification) time.Duration {
	if n.Duration == nil || *n.Duration < 0 {
		return r.defaultDuration
	}
	return *n.Duration
}

func (r *Registry) scheduleRemoval(id string, delay time.Duration) {
	remove := func() {
		r.Remove(id)
	}
	
	if r.scheduler != nil {
		err := r.scheduler.AfterFunc(delay, remove)
		if err == nil {
			return
		}
		log.Warn().Err(err).Str("notification_id", id).Msg("scheduler rejected expiry job, falling back to timer")
	}
	
	time.AfterFunc(delay, remove)
}

func (r *Registry) publish(eventType string, data interface{}) {
	if r.broadcaster == nil {
		return
	}
	
	r.broadcaster.Broadcast(event.Event{
		Topic: event.TopicNotifications,
		Type:  eventType,
		Data:  data,
	})
}
