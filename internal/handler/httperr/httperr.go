package httperr

import (
	"net/http"

	"rental-marketplace/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const InternalMessage = "Internal server error"

type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status, Error: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort renders err with the status its category maps to.
func Abort(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	AbortWithError(c, status, err, msg)
}

// StatusOf maps an error category to a status and client message.
// Uncategorised errors never leak their text.
func StatusOf(err error) (int, string) {
	switch {
	case errs.IsUnauthorized(err):
		return http.StatusUnauthorized, err.Error()
	case errs.IsForbidden(err):
		return http.StatusForbidden, err.Error()
	case errs.IsNotFound(err):
		return http.StatusNotFound, err.Error()
	case errs.IsValidation(err), errs.IsConflict(err):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, InternalMessage
	}
}
