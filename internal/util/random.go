package util

import (
	"fmt"
	"strconv"
	"time"
	
	"github.com/gosimple/slug"
	"github.com/lithammer/shortuuid/v4"
)

// GenerateNotificationID combines a random short uuid with a base36 timestamp.
// Collisions are not cryptographically impossible, only negligible.
func GenerateNotificationID(now time.Time) string {
	return shortuuid.New()[:10] + strconv.FormatInt(now.UnixNano(), 36)
}

// GenerateSlug builds a URL-friendly slug from a title and a numeric id.
func GenerateSlug(title string, id int64) string {
	baseSlug := slug.Make(title)
	if baseSlug == "" {
		return strconv.FormatInt(id, 10)
	}
	
	return fmt.Sprintf("%s-%d", baseSlug, id)
}
