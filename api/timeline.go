package api

import (
	"errors"
	"net/http"
	
	"github.com/gin-gonic/gin"
	"github.com/katatrina/feature-dashboard/internal/feature"
	"github.com/rs/zerolog/log"
)

func (server *Server) listTimelineView(query listQuery) ([]feature.TimelineItem, feature.SortField, feature.SortOrder) {
	field := feature.ParseSortField(query.Sort, feature.TimelineSortFields)
	order := feature.ParseSortOrder(query.Order)
	
	items := server.featureStore.ListTimeline()
	items = feature.FilterTimeline(items, feature.ParseTimelineStatuses(query.Status...))
	return feature.SortTimeline(items, field, order), field, order
}

//	@Summary		List timeline items
//	@Description	List development items, optionally filtered by status and sorted by date, priority or status.
//	@Tags			timeline
//	@Produce		json
//	@Param			status	query	[]string	false	"Statuses to keep (completed, in-progress, pending, delayed)"	collectionFormat(csv)
//	@Param			sort	query	string		false	"Sort field"	Enums(date, priority, status)
//	@Param			order	query	string		false	"Sort order"	Enums(asc, desc)
//	@Success		200		{array}	feature.TimelineItem
//	@Router			/timeline [get]
func (server *Server) listTimelineItems(ctx *gin.Context) {
	var query listQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	
	items, _, _ := server.listTimelineView(query)
	ctx.JSON(http.StatusOK, items)
}

//	@Summary		Get a timeline item
//	@Tags			timeline
//	@Produce		json
//	@Param			id	path		int	true	"Timeline item ID"
//	@Success		200	{object}	feature.TimelineItem
//	@Failure		404	{object}	map[string]string
//	@Router			/timeline/{id} [get]
func (server *Server) getTimelineItem(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	
	item, err := server.featureStore.GetTimelineItem(id)
	if err != nil {
		if errors.Is(err, feature.ErrTimelineItemNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		
		log.Error().Err(err).Int64("id", id).Msg("failed to get timeline item")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}
	
	ctx.JSON(http.StatusOK, item)
}
