package api

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	
	"github.com/katatrina/feature-dashboard/internal/event"
	"github.com/katatrina/feature-dashboard/internal/feature"
	"github.com/katatrina/feature-dashboard/internal/notification"
	"github.com/katatrina/feature-dashboard/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFrame(t *testing.T, reader *bufio.Reader) []string {
	t.Helper()
	
	lines := make(chan []string, 1)
	go func() {
		var frame []string
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				lines <- frame
				return
			}
			line = strings.TrimRight(line, "\n")
			if line == "" {
				lines <- frame
				return
			}
			frame = append(frame, line)
		}
	}()
	
	select {
	case frame := <-lines:
		return frame
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
		return nil
	}
}

func TestStreamEvents(t *testing.T) {
	hub := event.NewSSEServer()
	go hub.Run()
	defer hub.Close()
	
	registry := notification.NewRegistry(&holdScheduler{}, notification.WithBroadcaster(hub))
	server, err := NewServer(testConfig(), feature.NewSeededStore(), registry, theme.NewStore(theme.System), hub)
	require.NoError(t, err)
	
	httpServer := httptest.NewServer(server.Handler())
	defer httpServer.Close()
	
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, httpServer.URL+"/v1/notifications/stream", nil)
	require.NoError(t, err)
	resp, err := httpServer.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	assert.Equal(t, 1, hub.Clients(event.TopicNotifications))
	
	created := registry.Add(notification.NewNotification{Title: "Saved", Status: notification.StatusSuccess})
	
	frame := readFrame(t, bufio.NewReader(resp.Body))
	require.Len(t, frame, 2)
	assert.Equal(t, "event: "+event.EventTypeNotificationAdded, frame[0])
	assert.True(t, strings.HasPrefix(frame[1], "data: {"))
	assert.Contains(t, frame[1], `"id":"`+created.ID+`"`)
	
	cancel()
	require.Eventually(t, func() bool {
		return hub.Clients(event.TopicNotifications) == 0
	}, 2*time.Second, 10*time.Millisecond)
}
