package event

import (
	"sync"
	
	"github.com/rs/zerolog/log"
)

const (
	eventBufferSize  = 64
	ClientBufferSize = 16
)

type SSEServer struct {
	clients map[string]map[chan Event]bool
	events  chan Event
	mu      sync.Mutex
	
	closeOnce sync.Once
	done      chan struct{}
}

func NewSSEServer() *SSEServer {
	return &SSEServer{
		clients: make(map[string]map[chan Event]bool),
		events:  make(chan Event, eventBufferSize),
		done:    make(chan struct{}),
	}
}

// Register subscribes a client channel to a topic.
func (s *SSEServer) Register(topic string, client chan Event) {
	s.mu.Lock()
	if _, ok := s.clients[topic]; !ok {
		s.clients[topic] = make(map[chan Event]bool)
	}
	s.clients[topic][client] = true
	total := len(s.clients[topic])
	s.mu.Unlock()
	log.Info().Str("topic", topic).Int("clients", total).Msg("client registered")
}

// Unregister removes the client from the topic and closes its channel.
func (s *SSEServer) Unregister(topic string, client chan Event) {
	s.mu.Lock()
	remaining := 0
	if clients, ok := s.clients[topic]; ok {
		if clients[client] {
			delete(clients, client)
			close(client)
		}
		remaining = len(clients)
		if remaining == 0 {
			delete(s.clients, topic)
		}
	}
	s.mu.Unlock()
	log.Info().Str("topic", topic).Int("clients", remaining).Msg("client unregistered")
}

// Broadcast queues an event for every client of its topic.
// Events are dropped once the server is closed.
func (s *SSEServer) Broadcast(event Event) {
	select {
	case <-s.done:
		return
	default:
	}
	
	select {
	case s.events <- event:
	case <-s.done:
	}
}

// Run delivers queued events until Close is called.
func (s *SSEServer) Run() {
	for {
		select {
		case event := <-s.events:
			s.deliver(event)
		case <-s.done:
			return
		}
	}
}

// Close stops Run. It is safe to call more than once.
func (s *SSEServer) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

// deliver never blocks: a client whose buffer is full misses the event.
// The lock is held so Unregister cannot close a channel mid-send.
func (s *SSEServer) deliver(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	
	for client := range s.clients[event.Topic] {
		select {
		case client <- event:
		default:
			log.Warn().Str("topic", event.Topic).Str("type", event.Type).Msg("dropped event for slow client")
		}
	}
}

// Clients returns how many clients are subscribed to topic.
func (s *SSEServer) Clients(topic string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients[topic])
}
