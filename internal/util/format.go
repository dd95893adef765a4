package util

import (
	"strings"
	"time"
	
	"github.com/dustin/go-humanize"
)

// DateLayout is the layout used for submitted dates, e.g. "2024-03-01".
const DateLayout = "2006-01-02"

// DisplayDateLayout is the layout used on timeline cards, e.g. "Nov 3, 2021".
const DisplayDateLayout = "Jan 2, 2006"

// FormatRelative renders a time relative to now, e.g. "3 minutes ago".
func FormatRelative(t time.Time) string {
	return humanize.Time(t)
}

// FormatCount renders n with its noun pluralized, e.g. "1 milestone", "3 milestones".
func FormatCount(n int, singular, plural string) string {
	if n == 1 {
		return humanize.Comma(int64(n)) + " " + singular
	}
	return humanize.Comma(int64(n)) + " " + plural
}

// TitleCaseStatus turns a kebab-case status into a label, e.g. "under-review" -> "Under review".
func TitleCaseStatus(status string) string {
	if status == "" {
		return ""
	}
	label := strings.ReplaceAll(status, "-", " ")
	return strings.ToUpper(label[:1]) + label[1:]
}

// TruncateContent shortens text to maxLength characters, appending an ellipsis.
func TruncateContent(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}
