package respond

import (
	"github.com/gin-gonic/gin"

	"recruit-api/internal/shared/telemetry"
	"recruit-api/internal/shared/validation"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Detail string                   `json:"detail"`
	Errors []validation.FieldError `json:"errors,omitempty"`
}

// Error sends a standardized error response.
func Error(c *gin.Context, status int, detail string) {
	abort(c, status, ErrorResponse{Detail: detail})
}

// ValidationError sends a 422 listing every rejected field.
func ValidationError(c *gin.Context, status int, verr *validation.Error) {
	body := ErrorResponse{Detail: verr.Error()}
	if verr != nil {
		body.Errors = verr.Fields
	}
	abort(c, status, body)
}

func abort(c *gin.Context, status int, body ErrorResponse) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"detail":     body.Detail,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})
	c.AbortWithStatusJSON(status, body)
}
