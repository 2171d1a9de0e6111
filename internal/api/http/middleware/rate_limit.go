package middleware

import (
	"net/http"

	"github.com/blockguard/blockguard-backend/internal/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RateLimit rejects clients over their budget with 429. Limiter errors let
// the request through.
func RateLimit(l ratelimit.Limiter, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.WithError(err).WithField("request_id", GetRequestID(c.Request.Context())).
				Warn("rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
