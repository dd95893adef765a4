package api

import (
	"errors"
	"net/http"
	"net/url"
	"slices"
	"time"
	
	"github.com/gin-gonic/gin"
	"github.com/katatrina/feature-dashboard/internal/dashboard"
	"github.com/katatrina/feature-dashboard/internal/feature"
	"github.com/katatrina/feature-dashboard/internal/notification"
	"github.com/katatrina/feature-dashboard/internal/theme"
	"github.com/katatrina/feature-dashboard/internal/util"
	"github.com/rs/zerolog/log"
)

const brandName = "Fingrid"

const (
	tabInDevelopment = "in-development"
	tabRequests      = "requests"
)

type navLink struct {
	Href   string
	Label  string
	Icon   string
	Active bool
}

var sidebarLinks = []navLink{
	{Href: "/dashboard", Label: "Dashboard", Icon: "layout-dashboard"},
	{Href: "/features", Label: "Features", Icon: "git-pull-request"},
	{Href: "/timeline", Label: "Timeline", Icon: "timer"},
}

type chatWidget struct {
	ScriptURL string
	ID        string
}

// pageData is shared by every page; Content holds the page-specific view.
type pageData struct {
	Brand                string
	Title                string
	Nav                  []navLink
	Theme                theme.Theme
	ThemeSetting         theme.Theme
	ThemeOptions         []theme.Theme
	Notifications        []NotificationResponse
	NotificationStatuses []notification.Status
	ChatWidget           chatWidget
	Content              any
}

type statusOption struct {
	Value   string
	Label   string
	Checked bool
}

type sortLink struct {
	Label     string
	Href      string
	Active    bool
	Ascending bool
}

type requestCard struct {
	Request feature.FeatureRequest
	Upvoted bool
}

type homeView struct {
	dashboard.Summary
	InProgress int
	Completed  int
}

type featuresView struct {
	Tab           string
	Sort          feature.SortField
	Order         feature.SortOrder
	StatusOptions []statusOption
	SortLinks     []sortLink
	Requests      []requestCard
	Timeline      []feature.TimelineItem
	Categories    []string
}

type timelineView struct {
	LastUpdated   string
	Sort          feature.SortField
	Order         feature.SortOrder
	StatusOptions []statusOption
	SortLinks     []sortLink
	Items         []feature.TimelineItem
}

type errorView struct {
	Code    int
	Message string
}

func (server *Server) newPageData(ctx *gin.Context, title string, content any) pageData {
	current := server.themeStore.Get()
	
	nav := make([]navLink, len(sidebarLinks))
	for i, link := range sidebarLinks {
		link.Active = ctx.Request.URL.Path == link.Href
		nav[i] = link
	}
	
	return pageData{
		Brand:                brandName,
		Title:                title,
		Nav:                  nav,
		Theme:                theme.Resolve(current, prefersDark(ctx)),
		ThemeSetting:         current,
		ThemeOptions:         []theme.Theme{theme.Light, theme.Dark, theme.System},
		Notifications:        newNotificationResponses(server.notifications.List()),
		NotificationStatuses: notification.Statuses,
		ChatWidget: chatWidget{
			ScriptURL: server.config.ChatWidgetScriptURL,
			ID:        server.config.ChatWidgetID,
		},
		Content: content,
	}
}

func (server *Server) homePage(ctx *gin.Context) {
	summary := server.summary()
	view := homeView{Summary: summary}
	for _, count := range summary.Development.StatusBreakdown {
		switch feature.TimelineStatus(count.Status) {
		case feature.TimelineStatusInProgress:
			view.InProgress = count.Count
		case feature.TimelineStatusCompleted:
			view.Completed = count.Count
		}
	}
	
	ctx.HTML(http.StatusOK, "home", server.newPageData(ctx, "Feature Requests", view))
}

func (server *Server) dashboardPage(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "dashboard", server.newPageData(ctx, "Dashboard", server.summary()))
}

func (server *Server) featuresPage(ctx *gin.Context) {
	var query listQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		server.renderError(ctx, http.StatusBadRequest, "Invalid filter parameters")
		return
	}
	
	tab := ctx.DefaultQuery("tab", tabInDevelopment)
	if tab != tabRequests {
		tab = tabInDevelopment
	}
	
	view := featuresView{Tab: tab, Categories: feature.Categories}
	base := url.Values{"tab": {tab}}
	
	if tab == tabRequests {
		requests, field, order := server.listRequestView(query)
		voterID := currentVoterID(ctx)
		for _, request := range requests {
			view.Requests = append(view.Requests, requestCard{
				Request: request,
				Upvoted: server.featureStore.HasUpvoted(request.ID, voterID),
			})
		}
		
		selected := feature.ParseRequestStatuses(query.Status...)
		for _, status := range feature.RequestStatuses {
			view.StatusOptions = append(view.StatusOptions, statusOption{
				Value:   string(status),
				Label:   status.Style().Label,
				Checked: slices.Contains(selected, status),
			})
		}
		view.Sort, view.Order = field, order
		view.SortLinks = buildSortLinks("/features", base, query.Status, feature.RequestSortFields, field, order)
	} else {
		items, field, order := server.listTimelineView(query)
		view.Timeline = items
		
		selected := feature.ParseTimelineStatuses(query.Status...)
		view.StatusOptions = timelineStatusOptions(selected)
		view.Sort, view.Order = field, order
		view.SortLinks = buildSortLinks("/features", base, query.Status, feature.TimelineSortFields, field, order)
	}
	
	ctx.HTML(http.StatusOK, "features", server.newPageData(ctx, "Features", view))
}

func (server *Server) timelinePage(ctx *gin.Context) {
	var query listQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		server.renderError(ctx, http.StatusBadRequest, "Invalid filter parameters")
		return
	}
	
	items, field, order := server.listTimelineView(query)
	view := timelineView{
		LastUpdated:   server.lastUpdatedText(),
		Sort:          field,
		Order:         order,
		StatusOptions: timelineStatusOptions(feature.ParseTimelineStatuses(query.Status...)),
		SortLinks:     buildSortLinks("/timeline", url.Values{}, query.Status, feature.TimelineSortFields, field, order),
		Items:         items,
	}
	
	ctx.HTML(http.StatusOK, "timeline", server.newPageData(ctx, "Development Timeline", view))
}

func (server *Server) timelineItemPage(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		server.renderError(ctx, http.StatusBadRequest, err.Error())
		return
	}
	
	item, err := server.featureStore.GetTimelineItem(id)
	if err != nil {
		if errors.Is(err, feature.ErrTimelineItemNotFound) {
			server.renderError(ctx, http.StatusNotFound, err.Error())
			return
		}
		log.Error().Err(err).Int64("id", id).Msg("failed to get timeline item")
		server.renderError(ctx, http.StatusInternalServerError, ErrInternalServer.Error())
		return
	}
	
	ctx.HTML(http.StatusOK, "timeline_item", server.newPageData(ctx, item.Title, item))
}

// submitFeatureRequestForm handles the submission form. The redirect afterwards
// leaves the browser on an empty form.
func (server *Server) submitFeatureRequestForm(ctx *gin.Context) {
	req := new(createFeatureRequestRequest)
	if err := ctx.ShouldBind(req); err != nil {
		log.Error().Err(err).Msg("failed to bind feature request form")
		server.notify(notification.StatusError, "Error", "Could not submit the feature request")
		ctx.Redirect(http.StatusSeeOther, "/features?tab=requests")
		return
	}
	
	if violations := req.validate(); len(violations) > 0 {
		log.Error().Interface("violations", violations).Msg("feature request form is incomplete")
		server.notify(notification.StatusError, "Error", "Please fill in every field of the feature request")
		ctx.Redirect(http.StatusSeeOther, "/features?tab=requests#submit")
		return
	}
	
	created, err := server.submitFeatureRequest(req)
	if err != nil {
		log.Error().Err(err).Msg("failed to submit feature request")
		server.notify(notification.StatusError, "Error", "Could not submit the feature request")
		ctx.Redirect(http.StatusSeeOther, "/features?tab=requests")
		return
	}
	
	server.notify(notification.StatusSuccess, "Success", "Feature request \""+util.TruncateContent(created.Title, 60)+"\" submitted")
	ctx.Redirect(http.StatusSeeOther, "/features?tab=requests#"+created.Slug)
}

func (server *Server) upvoteFeatureRequestForm(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		server.renderError(ctx, http.StatusBadRequest, err.Error())
		return
	}
	
	if _, _, err = server.toggleUpvote(id, currentVoterID(ctx)); err != nil {
		if errors.Is(err, feature.ErrRequestNotFound) {
			server.renderError(ctx, http.StatusNotFound, err.Error())
			return
		}
		log.Error().Err(err).Int64("id", id).Msg("failed to toggle upvote")
		server.renderError(ctx, http.StatusInternalServerError, ErrInternalServer.Error())
		return
	}
	
	redirectBack(ctx, "/features?tab=requests")
}

func (server *Server) setThemeForm(ctx *gin.Context) {
	req := new(updateThemeRequest)
	if err := ctx.ShouldBind(req); err != nil || server.applyTheme(ctx, req.Theme) != nil {
		server.notify(notification.StatusWarning, "Warning", "Unknown theme")
	}
	
	redirectBack(ctx, "/dashboard")
}

// demoTopics are the canned messages behind the dashboard's notification setting buttons.
var demoTopics = map[string]string{
	"authorization": "You will be notified about authorization updates",
	"timeline":      "You will be notified about timeline changes",
}

func (server *Server) showDemoNotification(ctx *gin.Context) {
	status := notification.Status(ctx.PostForm("status"))
	if !status.Valid() {
		status = notification.StatusInfo
	}
	
	message := notification.DemoMessages[status]
	if topicMessage, ok := demoTopics[ctx.PostForm("topic")]; ok {
		message = topicMessage
	}
	
	server.notify(status, util.TitleCaseStatus(string(status)), message)
	redirectBack(ctx, "/dashboard")
}

func (server *Server) dismissNotificationForm(ctx *gin.Context) {
	server.notifications.Remove(ctx.Param("id"))
	redirectBack(ctx, "/dashboard")
}

func (server *Server) notFoundPage(ctx *gin.Context) {
	server.renderError(ctx, http.StatusNotFound, "Page not found")
}

func (server *Server) renderError(ctx *gin.Context, code int, message string) {
	ctx.HTML(code, "error", server.newPageData(ctx, http.StatusText(code), errorView{Code: code, Message: message}))
}

func (server *Server) lastUpdatedText() string {
	updated, err := time.Parse(util.DateLayout, server.config.TimelineLastUpdated)
	if err != nil {
		return server.config.TimelineLastUpdated
	}
	return updated.Format("January 2, 2006") + " (" + util.FormatRelative(updated) + ")"
}

func timelineStatusOptions(selected []feature.TimelineStatus) []statusOption {
	options := make([]statusOption, 0, len(feature.TimelineStatuses))
	for _, status := range feature.TimelineStatuses {
		options = append(options, statusOption{
			Value:   string(status),
			Label:   status.Style().Label,
			Checked: slices.Contains(selected, status),
		})
	}
	return options
}

// buildSortLinks choosing the active field flips the direction; another field starts descending.
func buildSortLinks(path string, base url.Values, statuses []string, fields []feature.SortField, current feature.SortField, order feature.SortOrder) []sortLink {
	links := make([]sortLink, 0, len(fields))
	for _, field := range fields {
		next := feature.SortDescending
		if field == current {
			next = order.Flip()
		}
		
		values := url.Values{}
		for k, v := range base {
			values[k] = v
		}
		if len(statuses) > 0 {
			values["status"] = statuses
		}
		values.Set("sort", string(field))
		values.Set("order", string(next))
		
		links = append(links, sortLink{
			Label:     util.TitleCaseStatus(string(field)),
			Href:      path + "?" + values.Encode(),
			Active:    field == current,
			Ascending: field == current && order == feature.SortAscending,
		})
	}
	return links
}
