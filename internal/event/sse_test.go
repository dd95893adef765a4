package event

import (
	"testing"
	"time"
	
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestSSEServer_DeliversToTopicClients(t *testing.T) {
	defer goleak.VerifyNone(t)
	
	server := NewSSEServer()
	go server.Run()
	defer server.Close()
	
	notifications := make(chan Event, ClientBufferSize)
	requests := make(chan Event, ClientBufferSize)
	server.Register(TopicNotifications, notifications)
	server.Register(TopicFeatureRequests, requests)
	
	server.Broadcast(Event{Topic: TopicNotifications, Type: EventTypeNotificationAdded, Data: "hello"})
	
	select {
	case got := <-notifications:
		assert.Equal(t, EventTypeNotificationAdded, got.Type)
		assert.Equal(t, "hello", got.Data)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
	
	select {
	case got := <-requests:
		t.Fatalf("unexpected event on other topic: %+v", got)
	case <-time.After(50 * time.Millisecond):
	}
	
	server.Unregister(TopicNotifications, notifications)
	server.Unregister(TopicFeatureRequests, requests)
}

func TestSSEServer_UnregisterClosesChannelOnce(t *testing.T) {
	server := NewSSEServer()
	client := make(chan Event, 1)
	
	server.Register(TopicNotifications, client)
	server.Unregister(TopicNotifications, client)
	
	_, open := <-client
	assert.False(t, open)
	
	require.NotPanics(t, func() {
		server.Unregister(TopicNotifications, client)
	})
}

func TestSSEServer_BroadcastAfterCloseDoesNotBlock(t *testing.T) {
	defer goleak.VerifyNone(t)
	
	server := NewSSEServer()
	go server.Run()
	server.Close()
	server.Close()
	
	done := make(chan struct{})
	go func() {
		for i := 0; i < eventBufferSize*2; i++ {
			server.Broadcast(Event{Topic: TopicNotifications, Type: EventTypeNotificationsClear})
		}
		close(done)
	}()
	
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked after close")
	}
}

func TestSSEServer_StalledClientDoesNotBlockOthers(t *testing.T) {
	defer goleak.VerifyNone(t)
	
	server := NewSSEServer()
	go server.Run()
	defer server.Close()
	
	stalled := make(chan Event)
	server.Register(TopicNotifications, stalled)
	
	done := make(chan struct{})
	go func() {
		for i := 0; i < eventBufferSize*3; i++ {
			server.Broadcast(Event{Topic: TopicNotifications, Type: EventTypeNotificationAdded})
		}
		close(done)
	}()
	
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a client that never reads")
	}
	
	registered := make(chan struct{})
	other := make(chan Event, ClientBufferSize)
	go func() {
		server.Register(TopicFeatureRequests, other)
		close(registered)
	}()
	
	select {
	case <-registered:
	case <-time.After(time.Second):
		t.Fatal("register blocked by a stalled client")
	}
	
	server.Broadcast(Event{Topic: TopicFeatureRequests, Type: EventTypeFeatureRequestUpvoted})
	select {
	case got := <-other:
		assert.Equal(t, EventTypeFeatureRequestUpvoted, got.Type)
	case <-time.After(time.Second):
		t.Fatal("event not delivered to a healthy client")
	}
	
	assert.Equal(t, 1, server.Clients(TopicNotifications))
	server.Unregister(TopicNotifications, stalled)
	server.Unregister(TopicFeatureRequests, other)
	assert.Zero(t, server.Clients(TopicNotifications))
}
