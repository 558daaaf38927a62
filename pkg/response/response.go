package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/auth-service/internal/domain/apperr"
)

// Envelope is the wire format of every response.
type Envelope[T any] struct {
	Success   bool        `json:"success"`
	Data      T           `json:"data,omitempty"`
	Error     []ErrorItem `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// ErrorItem is one entry of the error list.
type ErrorItem struct {
	Code  string `json:"code"`
	Msg   string `json:"msg"`
	Field string `json:"field,omitempty"`
}

// Timestamp returns the envelope timestamp: UTC ISO-8601 ending in "Z".
func Timestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000000") + "Z"
}

// Success writes a success envelope with the given status.
func Success[T any](c *gin.Context, status int, data T) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, Envelope[T]{
		Success:   true,
		Data:      data,
		Timestamp: Timestamp(),
	})
}

// Fail writes an error envelope from an explicit item list.
func Fail(c *gin.Context, status int, items []ErrorItem) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, Envelope[any]{
		Success:   false,
		Error:     items,
		Timestamp: Timestamp(),
	})
}

// FromError is the boundary translator: typed *apperr.Error values map to
// their code and status, anything else becomes a generic INTERNAL_ERROR so
// driver messages never leak to the client.
func FromError(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		Fail(c, ae.Status, []ErrorItem{{Code: ae.Code, Msg: ae.Message, Field: ae.Field}})
		return
	}
	internal := apperr.Internal()
	Fail(c, internal.Status, []ErrorItem{{Code: internal.Code, Msg: internal.Message}})
}

// AbortWithError writes the translated error and aborts the chain.
func AbortWithError(c *gin.Context, err error) {
	FromError(c, err)
	c.Abort()
}
