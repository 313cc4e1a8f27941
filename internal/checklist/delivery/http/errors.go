package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"weekly-checklist/internal/checklist"
	"weekly-checklist/pkg/response"
)

// mapError translates domain/use-case errors into a status code and the message
// that follows "Error: " in the response body.
func (h *handler) mapError(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, checklist.ErrMissingWeek):
		return http.StatusBadRequest, "Missing 'week' parameter"
	case errors.Is(err, checklist.ErrInvalidWeek):
		return http.StatusBadRequest, "Invalid 'week' parameter"
	case errors.Is(err, checklist.ErrInvalidPayload):
		return http.StatusBadRequest, "Invalid JSON" + strings.TrimPrefix(err.Error(), checklist.ErrInvalidPayload.Error())
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, "Request body too large"
	case errors.Is(err, checklist.ErrChecklistNotFound):
		return http.StatusNotFound, "Checklist not found"
	case errors.Is(err, checklist.ErrSaveFailed):
		return http.StatusInternalServerError, "Failed to save checklist"
	default:
		return http.StatusInternalServerError, response.DefaultErrorMessage
	}
}

// fail writes the mapped error for err.
func (h *handler) fail(c *gin.Context, err error) {
	status, message := h.mapError(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	response.Error(c, status, message)
}
