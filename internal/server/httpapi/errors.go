package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "internal server error"

func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrorBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as {"error": msg}. Server-side failures never echo
// their cause; a task that was stored but not linked is the one exception.
func (s *HTTPServer) writeError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	switch {
	case status != http.StatusInternalServerError:
	case errors.Is(err, common.ErrorTaskNotLinked):
		// keeps its message: the task exists but is unlisted
	case errors.Is(err, common.ErrorInternal):
		msg = internalErrorMessage
	default:
		s.logger.Error(c.Request.Context(), "unclassified error", "path", c.Request.URL.Path, "error", err)
		msg = internalErrorMessage
	}
	c.JSON(status, gin.H{"error": msg})
}
