package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IDResponse is the body returned by insert endpoints.
type IDResponse struct {
	ID string `json:"id"`
}

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// ID writes a 200 OK carrying the new record's id.
func ID(c *gin.Context, id string) {
	OK(c, IDResponse{ID: id})
}
