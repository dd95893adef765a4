package api

import (
	"errors"
	"net/http"
	
	"github.com/gin-gonic/gin"
	"github.com/katatrina/feature-dashboard/internal/event"
	"github.com/katatrina/feature-dashboard/internal/feature"
	"github.com/katatrina/feature-dashboard/internal/validator"
	"github.com/rs/zerolog/log"
)

type listQuery struct {
	Status []string `form:"status"`
	Sort   string   `form:"sort"`
	Order  string   `form:"order"`
}

type createFeatureRequestRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Category    string `json:"category" form:"category"`
	SubmittedBy string `json:"submitted_by" form:"submitted_by"`
}

func (req *createFeatureRequestRequest) validate() (violations []*FieldViolation) {
	fields := []struct {
		name  string
		value string
	}{
		{"title", req.Title},
		{"description", req.Description},
		{"category", req.Category},
		{"submitted_by", req.SubmittedBy},
	}
	for _, field := range fields {
		if err := validator.ValidateRequired(field.value); err != nil {
			violations = append(violations, fieldViolation(field.name, err))
		}
	}
	
	return violations
}

func (req *createFeatureRequestRequest) toInput() feature.NewFeatureRequest {
	return feature.NewFeatureRequest{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		SubmittedBy: req.SubmittedBy,
	}
}

// listRequestView applies the status filter and sort order from a query.
func (server *Server) listRequestView(query listQuery) ([]feature.FeatureRequest, feature.SortField, feature.SortOrder) {
	field := feature.ParseSortField(query.Sort, feature.RequestSortFields)
	order := feature.ParseSortOrder(query.Order)
	
	requests := server.featureStore.ListRequests()
	requests = feature.FilterRequests(requests, feature.ParseRequestStatuses(query.Status...))
	return feature.SortRequests(requests, field, order), field, order
}

func (server *Server) withVoteState(ctx *gin.Context, requests []feature.FeatureRequest) []FeatureRequestResponse {
	voterID := currentVoterID(ctx)
	out := make([]FeatureRequestResponse, 0, len(requests))
	for _, request := range requests {
		out = append(out, FeatureRequestResponse{
			FeatureRequest: request,
			Upvoted:        server.featureStore.HasUpvoted(request.ID, voterID),
		})
	}
	return out
}

//	@Summary		List feature requests
//	@Description	List feature requests, optionally filtered by status and sorted by date or upvotes.
//	@Tags			feature-requests
//	@Produce		json
//	@Param			status	query	[]string	false	"Statuses to keep (new, under-review, planned, rejected)"	collectionFormat(csv)
//	@Param			sort	query	string		false	"Sort field"	Enums(date, upvotes)
//	@Param			order	query	string		false	"Sort order"	Enums(asc, desc)
//	@Success		200		{array}	FeatureRequestResponse
//	@Router			/feature-requests [get]
func (server *Server) listFeatureRequests(ctx *gin.Context) {
	var query listQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	
	requests, _, _ := server.listRequestView(query)
	ctx.JSON(http.StatusOK, server.withVoteState(ctx, requests))
}

//	@Summary		Get a feature request
//	@Tags			feature-requests
//	@Produce		json
//	@Param			id	path		int	true	"Feature request ID"
//	@Success		200	{object}	FeatureRequestResponse
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/feature-requests/{id} [get]
func (server *Server) getFeatureRequest(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	
	request, err := server.featureStore.GetRequest(id)
	if err != nil {
		if errors.Is(err, feature.ErrRequestNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		
		log.Error().Err(err).Int64("id", id).Msg("failed to get feature request")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}
	
	ctx.JSON(http.StatusOK, FeatureRequestResponse{
		FeatureRequest: request,
		Upvoted:        server.featureStore.HasUpvoted(id, currentVoterID(ctx)),
	})
}

//	@Summary		Submit a feature request
//	@Description	Every field is required. The new request starts with status "new" and no upvotes.
//	@Tags			feature-requests
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createFeatureRequestRequest	true	"Feature request"
//	@Success		201		{object}	feature.FeatureRequest
//	@Failure		400		{object}	FailedValidationResponse
//	@Router			/feature-requests [post]
func (server *Server) createFeatureRequest(ctx *gin.Context) {
	req := new(createFeatureRequestRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Error().Err(err).Msg("failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	
	if violations := req.validate(); len(violations) > 0 {
		ctx.JSON(http.StatusBadRequest, failedValidationError(violations))
		return
	}
	
	created, err := server.submitFeatureRequest(req)
	if err != nil {
		log.Error().Err(err).Msg("failed to submit feature request")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}
	
	ctx.JSON(http.StatusCreated, created)
}

func (server *Server) submitFeatureRequest(req *createFeatureRequestRequest) (feature.FeatureRequest, error) {
	created, err := server.featureStore.SubmitRequest(req.toInput())
	if err != nil {
		return feature.FeatureRequest{}, err
	}
	
	log.Info().Int64("id", created.ID).Str("title", created.Title).Msg("feature request submitted")
	server.eventSender.Broadcast(event.Event{
		Topic: event.TopicFeatureRequests,
		Type:  event.EventTypeFeatureRequestSubmitted,
		Data:  created,
	})
	
	return created, nil
}

//	@Summary		Toggle the caller's upvote
//	@Description	The first call adds one upvote for the caller's voter cookie, the next call takes it back.
//	@Tags			feature-requests
//	@Produce		json
//	@Param			id	path		int	true	"Feature request ID"
//	@Success		200	{object}	UpvoteResponse
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/feature-requests/{id}/upvote [post]
func (server *Server) toggleFeatureRequestUpvote(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	
	updated, upvoted, err := server.toggleUpvote(id, currentVoterID(ctx))
	if err != nil {
		if errors.Is(err, feature.ErrRequestNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		
		log.Error().Err(err).Int64("id", id).Msg("failed to toggle upvote")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}
	
	ctx.JSON(http.StatusOK, UpvoteResponse{
		Request: FeatureRequestResponse{FeatureRequest: updated, Upvoted: upvoted},
		Upvoted: upvoted,
	})
}

func (server *Server) toggleUpvote(id int64, voterID string) (feature.FeatureRequest, bool, error) {
	updated, upvoted, err := server.featureStore.ToggleUpvote(id, voterID)
	if err != nil {
		return feature.FeatureRequest{}, false, err
	}
	
	server.eventSender.Broadcast(event.Event{
		Topic: event.TopicFeatureRequests,
		Type:  event.EventTypeFeatureRequestUpvoted,
		Data:  gin.H{"id": updated.ID, "upvotes": updated.Upvotes},
	})
	
	return updated, upvoted, nil
}
