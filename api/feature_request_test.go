package api

import (
	"encoding/json"
	"net/http"
	"testing"
	
	"github.com/katatrina/feature-dashboard/internal/event"
	"github.com/katatrina/feature-dashboard/internal/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func requestIDs(list []FeatureRequestResponse) []int64 {
	ids := make([]int64, 0, len(list))
	for _, r := range list {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestListFeatureRequests(t *testing.T) {
	testCases := []struct {
		name  string
		query string
		want  []int64
	}{
		{name: "default newest first", query: "", want: []int64{1, 2}},
		{name: "oldest first", query: "?sort=date&order=asc", want: []int64{2, 1}},
		{name: "fewest upvotes first", query: "?sort=upvotes&order=asc", want: []int64{2, 1}},
		{name: "most upvotes first", query: "?sort=upvotes&order=desc", want: []int64{1, 2}},
		{name: "status filter", query: "?status=new", want: []int64{2}},
		{name: "comma separated statuses", query: "?status=new,under-review", want: []int64{1, 2}},
		{name: "unknown status ignored", query: "?status=archived", want: []int64{1, 2}},
		{name: "no match", query: "?status=planned", want: []int64{}},
	}
	
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer(t)
			
			recorder := ts.do(http.MethodGet, "/v1/feature-requests"+tc.query)
			require.Equal(t, http.StatusOK, recorder.Code)
			
			got := decode[[]FeatureRequestResponse](t, recorder.Body.Bytes())
			assert.Equal(t, tc.want, requestIDs(got))
		})
	}
}

func TestCreateFeatureRequest(t *testing.T) {
	ts := newTestServer(t)
	
	body := `{"title":"Dark Mode","description":"Add a dark theme","category":"ui","submitted_by":"Team A"}`
	recorder := ts.do(http.MethodPost, "/v1/feature-requests", withJSON(body))
	require.Equal(t, http.StatusCreated, recorder.Code)
	
	created := decode[feature.FeatureRequest](t, recorder.Body.Bytes())
	assert.Equal(t, int64(3), created.ID)
	assert.Equal(t, "dark-mode-3", created.Slug)
	assert.Equal(t, feature.RequestStatusNew, created.Status)
	assert.Zero(t, created.Upvotes)
	assert.Equal(t, "Team A", created.SubmittedBy)
	
	assert.Len(t, ts.featureStore.ListRequests(), 3)
	assert.Equal(t, []string{event.EventTypeFeatureRequestSubmitted}, ts.sender.types(event.TopicFeatureRequests))
}

func TestCreateFeatureRequestMissingFields(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		fields []string
	}{
		{
			name:   "empty object",
			body:   `{}`,
			fields: []string{"title", "description", "category", "submitted_by"},
		},
		{
			name:   "blank title",
			body:   `{"title":"   ","description":"d","category":"ui","submitted_by":"me"}`,
			fields: []string{"title"},
		},
		{
			name:   "missing submitter",
			body:   `{"title":"t","description":"d","category":"ui"}`,
			fields: []string{"submitted_by"},
		},
	}
	
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer(t)
			
			recorder := ts.do(http.MethodPost, "/v1/feature-requests", withJSON(tc.body))
			require.Equal(t, http.StatusBadRequest, recorder.Code)
			
			resp := decode[FailedValidationResponse](t, recorder.Body.Bytes())
			var fields []string
			for _, violation := range resp.FieldViolations {
				fields = append(fields, violation.Field)
			}
			assert.Equal(t, tc.fields, fields)
			assert.Len(t, ts.featureStore.ListRequests(), 2)
			assert.Empty(t, ts.sender.types(event.TopicFeatureRequests))
		})
	}
}

func TestCreateFeatureRequestMalformedJSON(t *testing.T) {
	ts := newTestServer(t)
	
	recorder := ts.do(http.MethodPost, "/v1/feature-requests", withJSON(`{"title":`))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Len(t, ts.featureStore.ListRequests(), 2)
}

func TestGetFeatureRequest(t *testing.T) {
	ts := newTestServer(t)
	
	recorder := ts.do(http.MethodGet, "/v1/feature-requests/1")
	require.Equal(t, http.StatusOK, recorder.Code)
	got := decode[FeatureRequestResponse](t, recorder.Body.Bytes())
	assert.Equal(t, "Bulk Data Export Functionality", got.Title)
	assert.False(t, got.Upvoted)
	
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/v1/feature-requests/99").Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/v1/feature-requests/abc").Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/v1/feature-requests/0").Code)
}

func TestToggleFeatureRequestUpvote(t *testing.T) {
	ts := newTestServer(t)
	
	recorder := ts.do(http.MethodPost, "/v1/feature-requests/1/upvote", withVoter(testVoter))
	require.Equal(t, http.StatusOK, recorder.Code)
	first := decode[UpvoteResponse](t, recorder.Body.Bytes())
	assert.True(t, first.Upvoted)
	assert.Equal(t, int64(16), first.Request.Upvotes)
	
	recorder = ts.do(http.MethodGet, "/v1/feature-requests/1", withVoter(testVoter))
	assert.True(t, decode[FeatureRequestResponse](t, recorder.Body.Bytes()).Upvoted)
	
	recorder = ts.do(http.MethodPost, "/v1/feature-requests/1/upvote", withVoter(testVoter))
	require.Equal(t, http.StatusOK, recorder.Code)
	second := decode[UpvoteResponse](t, recorder.Body.Bytes())
	assert.False(t, second.Upvoted)
	assert.Equal(t, int64(15), second.Request.Upvotes)
	
	assert.Equal(t,
		[]string{event.EventTypeFeatureRequestUpvoted, event.EventTypeFeatureRequestUpvoted},
		ts.sender.types(event.TopicFeatureRequests),
	)
}

func TestToggleFeatureRequestUpvoteSeparateVoters(t *testing.T) {
	ts := newTestServer(t)
	
	ts.do(http.MethodPost, "/v1/feature-requests/2/upvote", withVoter(testVoter))
	recorder := ts.do(http.MethodPost, "/v1/feature-requests/2/upvote", withVoter("0d9c8b7a-6f5e-4d3c-9b2a-1f0e9d8c7b6a"))
	require.Equal(t, http.StatusOK, recorder.Code)
	
	got := decode[UpvoteResponse](t, recorder.Body.Bytes())
	assert.True(t, got.Upvoted)
	assert.Equal(t, int64(10), got.Request.Upvotes)
}

func TestToggleFeatureRequestUpvoteNotFound(t *testing.T) {
	ts := newTestServer(t)
	
	recorder := ts.do(http.MethodPost, "/v1/feature-requests/42/upvote", withVoter(testVoter))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Empty(t, ts.sender.types(event.TopicFeatureRequests))
}

func TestVoterCookieIssued(t *testing.T) {
	ts := newTestServer(t)
	
	recorder := ts.do(http.MethodGet, "/v1/feature-requests")
	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, voterCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	
	recorder = ts.do(http.MethodGet, "/v1/feature-requests", withVoter(testVoter))
	assert.Empty(t, recorder.Result().Cookies())
}
