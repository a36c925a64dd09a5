package handlers

import (
	"net/http"

	"github.com/Strum355/log"
	"github.com/gin-gonic/gin"
)

// The reference API reports validation and processing failures as 411 and
// refuses auth/vote failures with 403; both carry only a generic message,
// the cause is logged.
const (
	statusValidation = http.StatusLengthRequired
	statusRefused    = http.StatusForbidden
)

type apiError struct {
	err     error
	status  int
	message string
}

// Handle logs the underlying cause and responds with the generic message.
func (e *apiError) Handle(c *gin.Context) {
	if e.err != nil {
		log.WithError(e.err).Error(e.message)
	}
	c.JSON(e.status, gin.H{"message": e.message})
}

func validationError(err error, message string) *apiError {
	return &apiError{err: err, status: statusValidation, message: message}
}

func refusedError(err error, message string) *apiError {
	return &apiError{err: err, status: statusRefused, message: message}
}

type handlerFunc func(c *gin.Context) *apiError

// wrap adapts a handlerFunc into a gin handler, sending any returned error.
func wrap(h handlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiErr := h(c); apiErr != nil {
			apiErr.Handle(c)
		}
	}
}
