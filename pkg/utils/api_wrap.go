package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps the service error taxonomy onto HTTP codes.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrLocationNotFound):
		RespondError(c, http.StatusNotFound, "Location not found")
	case errors.Is(err, ErrNoMatch):
		RespondError(c, http.StatusNotFound, "No locations match the request")
	case errors.Is(err, ErrInvalidWeights):
		RespondError(c, http.StatusBadRequest, "Feature weights must be non-negative with at least one positive entry")
	case errors.Is(err, ErrInvalidLimit):
		RespondError(c, http.StatusBadRequest, "Limit must be between 1 and 100")
	case errors.Is(err, ErrClusterNotReady):
		RespondError(c, http.StatusServiceUnavailable, "Clustering model not ready")
	case errors.Is(err, ErrEmptyDataset):
		RespondError(c, http.StatusInternalServerError, "Weather dataset unavailable")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
