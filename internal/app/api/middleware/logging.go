package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// Logging logs one structured record per request and echoes a request id
// back to the caller.
func Logging(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
			c.Request.Header.Set(requestIDHeader, reqID)
		}
		c.Header(requestIDHeader, reqID)

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := c.Writer.Status()
		attrs := []any{
			slog.String("req_id", reqID),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("remote", c.ClientIP()),
			slog.Int("status", status),
			slog.Int64("dur_ms", time.Since(start).Milliseconds()),
			slog.Int("resp_bytes", c.Writer.Size()),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("error", c.Errors.String()))
		}
		if status >= http.StatusInternalServerError {
			base.Error("http_request", attrs...)
			return
		}
		base.Info("http_request", attrs...)
	}
}
