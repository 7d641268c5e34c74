package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RetryNotice is the single user-facing message for every runtime failure
// of the recommendation pipeline. No kind is retried automatically.
const RetryNotice = "could not generate a recommendation, please adjust your inputs and retry"

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if id, ok := v.(string); ok {
			return id
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

// HandleServiceError maps the error taxonomy onto HTTP statuses. The four
// runtime kinds all collapse into the same retry notice for the caller.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrRequestInFlight):
		RespondError(c, http.StatusConflict, "a recommendation request is already in progress")
	case errors.Is(err, ErrRequestSuperseded):
		RespondError(c, http.StatusConflict, "request was superseded by a newer submission")
	case errors.Is(err, ErrNoRecommendation):
		RespondError(c, http.StatusNotFound, "no recommendation available yet")
	case errors.Is(err, ErrIncompleteRecommendation):
		RespondError(c, http.StatusUnprocessableEntity, RetryNotice)
	case errors.Is(err, ErrConfigurationMissing):
		RespondError(c, http.StatusServiceUnavailable, RetryNotice)
	case errors.Is(err, ErrServiceUnavailable),
		errors.Is(err, ErrMalformedResponse),
		errors.Is(err, ErrSchemaViolation):
		RespondError(c, http.StatusBadGateway, RetryNotice)
	default:
		RespondError(c, http.StatusInternalServerError, "internal server error")
	}
}
