package middleware

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// maxLoggedBody caps how much of a request or response body lands in the
// log line. Avatar data URIs can run to megabytes.
const maxLoggedBody = 2048

// Logging emits one line per request with the request id, path, and
// truncated request/response bodies. Multipart uploads are logged by size
// only.
func Logging(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		// Capture request body, except binary multipart payloads
		var reqBody string
		if strings.HasPrefix(c.Request.Header.Get("Content-Type"), "multipart/") {
			reqBody = fmt.Sprintf("<multipart %d bytes>", c.Request.ContentLength)
		} else if c.Request.Body != nil {
			raw, _ := io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))
			reqBody = truncate(string(raw))
		}

		// Capture response body
		rec := &responseCapture{ResponseWriter: c.Writer}
		c.Writer = rec

		// Process request
		c.Next()

		requestID := GetRequestID(c)
		api := path
		if query != "" {
			api = api + "?" + query
		}

		logLine := fmt.Sprintf("%s | %s | %s | %s | request: %s | response: %s |",
			time.Now().Format(time.RFC3339Nano),
			levelString(c.Writer.Status()),
			requestID,
			api,
			reqBody,
			truncate(rec.body.String()),
		)

		// Choose log level based on status code and emit single-line log
		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Error(logLine)
		case status >= 400:
			log.Warn(logLine)
		default:
			log.Info(logLine)
		}
	}
}

func truncate(s string) string {
	if len(s) <= maxLoggedBody {
		return s
	}
	return s[:maxLoggedBody] + "..."
}

// responseCapture captures response body while delegating to original writer.
type responseCapture struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *responseCapture) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseCapture) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}

func levelString(status int) string {
	switch {
	case status >= 500:
		return "ERROR"
	case status >= 400:
		return "WARN"
	default:
		return "INFO"
	}
}
