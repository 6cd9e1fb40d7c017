package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recruit-api/internal/shared/telemetry"
)

// Context keys handlers set so the request log names the records involved.
const (
	JobIDKey         = "jobId"
	CandidateIDKey   = "candidateId"
	ApplicationIDKey = "applicationId"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		for key, field := range map[string]string{
			JobIDKey:         "job_id",
			CandidateIDKey:   "candidate_id",
			ApplicationIDKey: "application_id",
		} {
			if v := c.GetString(key); v != "" {
				fields[field] = v
			}
		}
		telemetry.Info("request.complete", fields)
	}
}
