package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error body for non-booking endpoints: {"error": "..."}.
// The booking endpoints keep their own {"success": false, "message": "..."}
// shape for compatibility with the existing front-end.
type Response struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

// AbortWithError records err on the gin context for the error middleware and
// writes the public response. The original error is preserved for logging.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
