package event

// Event is a single message pushed to subscribed clients.
type Event struct {
	Topic string      // e.g. "notifications", "feature-requests"
	Type  string      // e.g. notification_added, feature_request_upvoted
	Data  interface{} // payload, encoded as JSON by the stream handler
}

const (
	TopicNotifications   = "notifications"
	TopicFeatureRequests = "feature-requests"
)

const (
	EventTypeNotificationAdded   = "notification_added"
	EventTypeNotificationRemoved = "notification_removed"
	EventTypeNotificationsClear  = "notifications_cleared"
	
	EventTypeFeatureRequestSubmitted = "feature_request_submitted"
	EventTypeFeatureRequestUpvoted   = "feature_request_upvoted"
)

// EventSender pushes events to clients registered on a topic.
type EventSender interface {
	Register(topic string, client chan Event)
	Unregister(topic string, client chan Event)
	Broadcast(event Event)
	Run()
	Close()
}
