package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	
	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive integer path parameter.
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	
	return id, nil
}

// redirectBack sends the browser to the referring page on this site, or to fallback.
// Only the path and query of the referrer are used so the redirect never leaves the site.
func redirectBack(ctx *gin.Context, fallback string) {
	target := fallback
	if referer := ctx.GetHeader("Referer"); referer != "" {
		u, err := url.Parse(referer)
		if err == nil && strings.HasPrefix(u.Path, "/") && !strings.HasPrefix(u.Path, "//") && (u.Host == "" || u.Host == ctx.Request.Host) {
			target = u.Path
			if u.RawQuery != "" {
				target += "?" + u.RawQuery
			}
			if u.Fragment != "" {
				target += "#" + u.Fragment
			}
		}
	}
	
	ctx.Redirect(http.StatusSeeOther, target)
}
