package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

func requestID(c *gin.Context) string {
	if id := c.GetHeader("X-Request-Id"); id != "" {
		return id
	}
	return uuid.New().String()
}

// RequestLogger tags every request with an id, echoes it back in the
// X-Request-Id header and logs the outcome with timing.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := requestID(c)
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set("X-Request-Id", id)

		c.Next()

		entry := log.WithFields(logrus.Fields{
			"request_id":  id,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"client_ip":   c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			entry.Error("request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request completed")
		}
	}
}

// Recovery converts handler panics into a logged 500 with the standard
// error body.
func Recovery(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.WithFields(logrus.Fields{
					"request_id": c.GetString(RequestIDKey),
					"method":     c.Request.Method,
					"path":       c.Request.URL.Path,
					"panic":      recovered,
					"stack":      string(debug.Stack()),
				}).Error("panic recovered in request handler")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"detail":     "internal server error",
					"error_code": "ERR_500",
				})
			}
		}()
		c.Next()
	}
}
