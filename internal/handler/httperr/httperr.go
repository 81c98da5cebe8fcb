package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope every endpoint returns: a message plus
// optional field-level sub-messages keyed by field name.
type Response struct {
	Status  int               `json:"-"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, fieldErrors map[string]string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{
		Status:  status,
		Message: msg,
		Errors:  fieldErrors,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
