package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error shape both services expose: a human-readable detail
// plus, for validation failures, a field -> message map.
type ErrorBody struct {
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Detail writes a plain {"detail": ...} error response.
func Detail(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorBody{Detail: detail})
}

// ValidationError writes a 422 with per-field messages.
func ValidationError(c *gin.Context, detail string, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, ErrorBody{Detail: detail, Errors: fields})
}

// AbortDetail aborts the request with a {"detail": ...} body; used by
// middleware so downstream handlers never run.
func AbortDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, ErrorBody{Detail: detail})
}
