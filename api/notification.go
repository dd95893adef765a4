package api

import (
	"net/http"
	"time"
	
	"github.com/gin-gonic/gin"
	"github.com/katatrina/feature-dashboard/internal/notification"
	"github.com/katatrina/feature-dashboard/internal/validator"
	"github.com/rs/zerolog/log"
)

type addNotificationRequest struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	Status     string `json:"status"`
	DurationMs *int64 `json:"duration_ms"` // omitted: default lifetime, 0: keep until dismissed
}

func (req *addNotificationRequest) validate() (violations []*FieldViolation) {
	if err := validator.ValidateString(req.Title, 1, 200); err != nil {
		violations = append(violations, fieldViolation("title", err))
	}
	if err := validator.ValidateString(req.Message, 0, 1000); err != nil {
		violations = append(violations, fieldViolation("message", err))
	}
	if err := validator.ValidateOneOf(req.Status, "info", "success", "warning", "error"); err != nil {
		violations = append(violations, fieldViolation("status", err))
	}
	if req.DurationMs != nil {
		if err := validator.ValidateDurationMillis(*req.DurationMs); err != nil {
			violations = append(violations, fieldViolation("duration_ms", err))
		}
	}
	
	return violations
}

//	@Summary		List notifications
//	@Description	Current notifications in display order.
//	@Tags			notifications
//	@Produce		json
//	@Success		200	{array}	NotificationResponse
//	@Router			/notifications [get]
func (server *Server) listNotifications(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, newNotificationResponses(server.notifications.List()))
}

//	@Summary		Add a notification
//	@Description	Adds a toast. It expires after duration_ms (default 5000) unless duration_ms is 0.
//	@Tags			notifications
//	@Accept			json
//	@Produce		json
//	@Param			request	body		addNotificationRequest	true	"Notification"
//	@Success		201		{object}	NotificationResponse
//	@Failure		400		{object}	FailedValidationResponse
//	@Router			/notifications [post]
func (server *Server) addNotification(ctx *gin.Context) {
	req := new(addNotificationRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Error().Err(err).Msg("failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	
	if violations := req.validate(); len(violations) > 0 {
		ctx.JSON(http.StatusBadRequest, failedValidationError(violations))
		return
	}
	
	input := notification.NewNotification{
		Title:   req.Title,
		Message: req.Message,
		Status:  notification.Status(req.Status),
	}
	if req.DurationMs != nil {
		d := time.Duration(*req.DurationMs) * time.Millisecond
		input.Duration = &d
	}
	
	created := server.notifications.Add(input)
	ctx.JSON(http.StatusCreated, newNotificationResponse(created))
}

//	@Summary		Dismiss a notification
//	@Description	Removing an unknown id succeeds as well.
//	@Tags			notifications
//	@Param			id	path	string	true	"Notification ID"
//	@Success		204
//	@Router			/notifications/{id} [delete]
func (server *Server) removeNotification(ctx *gin.Context) {
	server.notifications.Remove(ctx.Param("id"))
	ctx.Status(http.StatusNoContent)
}

//	@Summary		Clear notifications
//	@Tags			notifications
//	@Success		204
//	@Router			/notifications [delete]
func (server *Server) clearNotifications(ctx *gin.Context) {
	server.notifications.Clear()
	ctx.Status(http.StatusNoContent)
}

// notify adds a toast with the default lifetime.
func (server *Server) notify(status notification.Status, title, message string) notification.Notification {
	return server.notifications.Add(notification.NewNotification{
		Title:   title,
		Message: message,
		Status:  status,
	})
}
