package util

import (
	"strconv"
	"strings"
	"testing"
	"time"
	
	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "1 milestone", FormatCount(1, "milestone", "milestones"))
	assert.Equal(t, "0 milestones", FormatCount(0, "milestone", "milestones"))
	assert.Equal(t, "1,200 requests", FormatCount(1200, "request", "requests"))
}

func TestTitleCaseStatus(t *testing.T) {
	assert.Equal(t, "Under review", TitleCaseStatus("under-review"))
	assert.Equal(t, "In progress", TitleCaseStatus("in-progress"))
	assert.Equal(t, "New", TitleCaseStatus("new"))
	assert.Equal(t, "", TitleCaseStatus(""))
}

func TestTruncateContent(t *testing.T) {
	assert.Equal(t, "short", TruncateContent("short", 10))
	assert.Equal(t, "abc...", TruncateContent("abcdef", 3))
	assert.Equal(t, "äöü...", TruncateContent("äöüß", 3))
}

func TestFormatRelative(t *testing.T) {
	assert.Equal(t, "2 hours ago", FormatRelative(time.Now().Add(-2*time.Hour)))
}

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "bulk-data-export-functionality-1", GenerateSlug("Bulk Data Export Functionality", 1))
	assert.Equal(t, "7", GenerateSlug("!!!", 7))
}

func TestGenerateNotificationID(t *testing.T) {
	now := time.Now()
	a := GenerateNotificationID(now)
	b := GenerateNotificationID(now)
	
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, strconv.FormatInt(now.UnixNano(), 36)))
}
