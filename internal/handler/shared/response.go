package shared

import (
	"github.com/gin-gonic/gin"

	"github.com/vmdantas/mail-triage-go/internal/httperror"
	"github.com/vmdantas/mail-triage-go/internal/middleware"
)

// WriteError writes the standard JSON error body.
func WriteError(c *gin.Context, err error) {
	if c == nil {
		return
	}
	status, payload := httperror.Response(err, middleware.GetRequestID(c))
	c.JSON(status, payload)
}

// BindJSON parses the request body as JSON, writing a validation error
// on failure.
func BindJSON(c *gin.Context, out any) bool {
	if c == nil {
		return false
	}
	if err := c.ShouldBindJSON(out); err != nil {
		WriteError(c, httperror.NewValidationError(err))
		return false
	}
	return true
}
