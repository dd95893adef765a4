package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	
	"github.com/gin-gonic/gin"
	"github.com/katatrina/feature-dashboard/internal/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedirectBack(t *testing.T) {
	testCases := []struct {
		name     string
		referer  string
		location string
	}{
		{name: "no referer", referer: "", location: "/fallback"},
		{name: "same site", referer: "http://example.com/timeline?status=pending#top", location: "/timeline?status=pending#top"},
		{name: "relative", referer: "/features?tab=requests", location: "/features?tab=requests"},
		{name: "other host", referer: "https://evil.test/phish", location: "/fallback"},
		{name: "protocol relative path", referer: "http://example.com//evil.test", location: "/fallback"},
	}
	
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.POST("/theme", func(ctx *gin.Context) {
				redirectBack(ctx, "/fallback")
			})
			
			req := httptest.NewRequest(http.MethodPost, "http://example.com/theme", nil)
			if tc.referer != "" {
				req.Header.Set("Referer", tc.referer)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			
			assert.Equal(t, http.StatusSeeOther, recorder.Code)
			assert.Equal(t, tc.location, recorder.Header().Get("Location"))
		})
	}
}

func TestBuildSortLinks(t *testing.T) {
	links := buildSortLinks("/timeline", url.Values{}, []string{"pending"}, feature.TimelineSortFields, feature.SortByDate, feature.SortDescending)
	require.Len(t, links, len(feature.TimelineSortFields))
	
	date := links[0]
	assert.True(t, date.Active)
	assert.False(t, date.Ascending)
	
	u, err := url.Parse(date.Href)
	require.NoError(t, err)
	assert.Equal(t, "/timeline", u.Path)
	assert.Equal(t, "asc", u.Query().Get("order"))
	assert.Equal(t, "pending", u.Query().Get("status"))
	
	for _, link := range links[1:] {
		assert.False(t, link.Active)
		u, err := url.Parse(link.Href)
		require.NoError(t, err)
		assert.Equal(t, "desc", u.Query().Get("order"))
	}
}
