package middleware

import (
	"net/http"
	"time"

	"github.com/bbapp/bulletin-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger writes one line per request once the handler chain is done.
// The request id is taken from X-Request-ID or generated, stored under
// "request_id" and echoed back. Lines carry the matched route template, so
// /api/v1/bulletins/7 and /api/v1/bulletins/8 group together, plus the
// caller, the response language and the error a handler attached.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()[:8]
		}
		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		event := eventFor(logger.GetLogger(), status).
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("route", routeLabel(c.FullPath())).
			Str("path", c.Request.URL.Path).
			Str("query", c.Request.URL.RawQuery).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP())

		if identity := GetIdentity(c); identity != nil {
			event = event.Int("user_id", identity.UserID)
		}
		if _, ok := c.Get(localeKey); ok {
			event = event.Str("locale", string(GetLocale(c)))
		}
		if last := c.Errors.Last(); last != nil {
			event = event.Str("error", last.Error())
		}

		event.Msg("request")
	}
}

func eventFor(l *zerolog.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return l.Error()
	case status >= http.StatusBadRequest:
		return l.Warn()
	default:
		return l.Info()
	}
}
