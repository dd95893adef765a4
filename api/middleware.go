package api

import (
	"net/http"
	"strings"
	"time"
	
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	voterCookieName    = "voter_id"
	voterIDKey         = "voterID"
	voterCookieMaxAge  = 365 * 24 * 60 * 60
	colorSchemeHintKey = "Sec-CH-Prefers-Color-Scheme"
)

// requestLogger logs one line per request with zerolog.
func requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		
		status := ctx.Writer.Status()
		var logEvent *zerolog.Event
		switch {
		case status >= 500:
			logEvent = log.Error()
		case status >= 400:
			logEvent = log.Warn()
		default:
			logEvent = log.Info()
		}
		
		logEvent.
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", ctx.ClientIP()).
			Msg("request handled")
	}
}

// clientHintsMiddleware asks browsers to send their colour-scheme preference.
func clientHintsMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Header("Accept-CH", colorSchemeHintKey)
		ctx.Header("Vary", colorSchemeHintKey)
		ctx.Next()
	}
}

// voterMiddleware gives every browser a stable anonymous id used for upvotes.
func voterMiddleware(secure bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		voterID, err := ctx.Cookie(voterCookieName)
		if err != nil || uuid.Validate(voterID) != nil {
			voterID = uuid.NewString()
			ctx.SetSameSite(http.SameSiteLaxMode)
			ctx.SetCookie(voterCookieName, voterID, voterCookieMaxAge, "/", "", secure, true)
		}
		
		ctx.Set(voterIDKey, voterID)
		ctx.Next()
	}
}

func currentVoterID(ctx *gin.Context) string {
	return ctx.GetString(voterIDKey)
}

func prefersDark(ctx *gin.Context) bool {
	return strings.Trim(ctx.GetHeader(colorSchemeHintKey), `"`) == "dark"
}
