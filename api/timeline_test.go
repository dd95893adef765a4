package api

import (
	"net/http"
	"testing"
	
	"github.com/katatrina/feature-dashboard/internal/dashboard"
	"github.com/katatrina/feature-dashboard/internal/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timelineIDs(items []feature.TimelineItem) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestListTimelineItems(t *testing.T) {
	ts := newTestServer(t)
	
	recorder := ts.do(http.MethodGet, "/v1/timeline?status=completed")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []int64{388}, timelineIDs(decode[[]feature.TimelineItem](t, recorder.Body.Bytes())))
	
	asc := decode[[]feature.TimelineItem](t, ts.do(http.MethodGet, "/v1/timeline?sort=priority&order=asc").Body.Bytes())
	desc := decode[[]feature.TimelineItem](t, ts.do(http.MethodGet, "/v1/timeline?sort=priority&order=desc").Body.Bytes())
	require.Len(t, asc, 9)
	
	reversed := timelineIDs(desc)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	assert.Equal(t, timelineIDs(asc), reversed)
}

func TestGetTimelineItem(t *testing.T) {
	ts := newTestServer(t)
	
	recorder := ts.do(http.MethodGet, "/v1/timeline/388")
	require.Equal(t, http.StatusOK, recorder.Code)
	item := decode[feature.TimelineItem](t, recorder.Body.Bytes())
	assert.Equal(t, feature.TimelineStatusCompleted, item.Status)
	
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/v1/timeline/1").Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/v1/timeline/-5").Code)
}

func TestGetDashboardSummary(t *testing.T) {
	ts := newTestServer(t)
	
	recorder := ts.do(http.MethodGet, "/v1/dashboard")
	require.Equal(t, http.StatusOK, recorder.Code)
	
	summary := decode[dashboard.Summary](t, recorder.Body.Bytes())
	assert.Equal(t, 9, summary.Development.ActiveFeatures)
	assert.Equal(t, "3 in progress, 5 pending, 1 completed", summary.Development.BreakdownText)
	require.NotNil(t, summary.Development.LatestRelease)
	assert.Equal(t, int64(388), summary.Development.LatestRelease.ID)
	assert.Len(t, summary.Development.RecentDevelopments, 3)
	
	assert.Equal(t, 2, summary.Requests.TotalRequests)
	assert.Equal(t, int64(23), summary.Requests.TotalUpvotes)
	require.NotNil(t, summary.Requests.MostUpvoted)
	assert.Equal(t, int64(1), summary.Requests.MostUpvoted.ID)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)
	
	recorder := ts.do(http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}
