package api

import (
	"net/http"
	
	"github.com/gin-gonic/gin"
	"github.com/katatrina/feature-dashboard/internal/dashboard"
)

func (server *Server) summary() dashboard.Summary {
	return dashboard.Summarize(
		server.featureStore.ListTimeline(),
		server.featureStore.ListRequests(),
		server.config.RecentDevelopmentsLimit,
	)
}

//	@Summary		Dashboard summary
//	@Description	Summary cards for development progress and the feature request board.
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{object}	dashboard.Summary
//	@Router			/dashboard [get]
func (server *Server) getDashboardSummary(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, server.summary())
}
