package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	
	"github.com/gin-gonic/gin"
	"github.com/katatrina/feature-dashboard/internal/event"
	"github.com/rs/zerolog/log"
)

const sseKeepAliveInterval = 30 * time.Second

// streamEvents returns a handler that streams a topic's events as Server-Sent Events.
//
//	@Summary		Stream notification events
//	@Description	Events: notification_added, notification_removed, notifications_cleared.
//	@Tags			notifications
//	@Produce		text/event-stream
//	@Success		200	{string}	string	"Event stream. Data is sent as 'event: {eventType}\ndata: {jsonData}'"
//	@Router			/notifications/stream [get]
func (server *Server) streamEvents(topic string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Subscribe before the headers go out so a connected client sees every later event.
		clientChan := make(chan event.Event, event.ClientBufferSize)
		server.eventSender.Register(topic, clientChan)
		defer server.eventSender.Unregister(topic, clientChan)
		
		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")
		c.Status(http.StatusOK)
		c.Writer.Flush()
		
		keepAlive := time.NewTicker(sseKeepAliveInterval)
		defer keepAlive.Stop()
		
		for {
			select {
			case evt, ok := <-clientChan:
				if !ok {
					return
				}
				data, err := json.Marshal(evt.Data)
				if err != nil {
					log.Error().Err(err).Str("type", evt.Type).Msg("failed to encode event")
					continue
				}
				fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", evt.Type, data)
				c.Writer.Flush()
			case <-keepAlive.C:
				fmt.Fprint(c.Writer, ": keep-alive\n\n")
				c.Writer.Flush()
			case <-c.Request.Context().Done():
				return
			}
		}
	}
}
