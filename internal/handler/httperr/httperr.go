package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lardocepet-api/internal/usecase/commands"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records err on the context for the logging middleware and
// writes the public response envelope.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithRejection maps a validation rejection class to its HTTP status and
// writes the rejection reason as the public message.
func AbortWithRejection(c *gin.Context, rejection *commands.Rejection) {
	resp := Response{Status: StatusForRejection(rejection.Class)}
	resp.Error.Message = rejection.Reason
	c.AbortWithStatusJSON(resp.Status, resp)
}

func StatusForRejection(class commands.RejectionClass) int {
	switch class {
	case commands.ClassInvalidInput:
		return http.StatusBadRequest
	case commands.ClassNotFound:
		return http.StatusNotFound
	case commands.ClassForbidden:
		return http.StatusForbidden
	case commands.ClassConflict:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
