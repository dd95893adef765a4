package api

import (
	"net/http"
	"testing"
	
	"github.com/katatrina/feature-dashboard/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTheme(t *testing.T) {
	ts := newTestServer(t)
	
	recorder := ts.do(http.MethodGet, "/v1/theme")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, ThemeResponse{Theme: "system", Resolved: "light"}, decode[ThemeResponse](t, recorder.Body.Bytes()))
	
	recorder = ts.do(http.MethodGet, "/v1/theme", withHeader(colorSchemeHintKey, `"dark"`))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, ThemeResponse{Theme: "system", Resolved: "dark"}, decode[ThemeResponse](t, recorder.Body.Bytes()))
	assert.Equal(t, colorSchemeHintKey, recorder.Header().Get("Accept-CH"))
}

func TestUpdateTheme(t *testing.T) {
	ts := newTestServer(t)
	
	recorder := ts.do(http.MethodPut, "/v1/theme", withJSON(`{"theme":"dark"}`))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, ThemeResponse{Theme: "dark", Resolved: "dark"}, decode[ThemeResponse](t, recorder.Body.Bytes()))
	
	recorder = ts.do(http.MethodPut, "/v1/theme", withJSON(`{"theme":"toggle"}`))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, theme.Light, ts.themeStore.Get())
	
	recorder = ts.do(http.MethodPut, "/v1/theme", withJSON(`{"theme":"blue"}`))
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	resp := decode[FailedValidationResponse](t, recorder.Body.Bytes())
	require.Len(t, resp.FieldViolations, 1)
	assert.Equal(t, "theme", resp.FieldViolations[0].Field)
	assert.Equal(t, theme.Light, ts.themeStore.Get())
}

func TestToggleThemeFromSystem(t *testing.T) {
	ts := newTestServer(t)
	
	// A dark-preferring browser on the system theme toggles to light.
	recorder := ts.do(http.MethodPut, "/v1/theme", withJSON(`{"theme":"toggle"}`), withHeader(colorSchemeHintKey, "dark"))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, theme.Light, ts.themeStore.Get())
}
