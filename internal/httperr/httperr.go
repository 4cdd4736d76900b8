package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MsgServerError      = "Server error"
	MsgValidationFailed = "Validation failed"
)

// HTTPError is the body of every non-2xx response.
type HTTPError struct {
	Msg     string   `json:"msg"`
	Details []Detail `json:"details,omitempty"`
}

// Detail itemizes one failed field of a validation error.
type Detail struct {
	Message string `json:"message"`
	Path    string `json:"path"`
	Type    string `json:"type"`
}

func Write(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, HTTPError{Msg: msg})
}

func Validation(c *gin.Context, details []Detail) {
	c.AbortWithStatusJSON(http.StatusBadRequest, HTTPError{
		Msg:     MsgValidationFailed,
		Details: details,
	})
}

func BadRequest(c *gin.Context, msg string) {
	Write(c, http.StatusBadRequest, msg)
}

func Unauthorized(c *gin.Context, msg string) {
	Write(c, http.StatusUnauthorized, msg)
}

func Forbidden(c *gin.Context, msg string) {
	Write(c, http.StatusForbidden, msg)
}

func NotFound(c *gin.Context, msg string) {
	Write(c, http.StatusNotFound, msg)
}

func Conflict(c *gin.Context, msg string) {
	Write(c, http.StatusConflict, msg)
}

func TooManyRequests(c *gin.Context, msg string) {
	Write(c, http.StatusTooManyRequests, msg)
}

// Internal never carries the cause; callers log it.
func Internal(c *gin.Context) {
	Write(c, http.StatusInternalServerError, MsgServerError)
}
