package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Error codes returned in the error envelope. The UI keys its messages off these.
const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInvalidAPIKey    = "INVALID_API_KEY"
	CodeAPIKeyMissing    = "API_KEY_MISSING"
	CodeQuotaExceeded    = "QUOTA_EXCEEDED"
	CodeModelUnavailable = "MODEL_UNAVAILABLE"
	CodeEmptyResponse    = "EMPTY_RESPONSE"
	CodeEmptySynthesis   = "EMPTY_SYNTHESIS"
	CodeTimeout          = "TIMEOUT"
	CodeExportFailed     = "EXPORT_FAILED"
	CodeInternalError    = "INTERNAL_ERROR"
)

type apiResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *apiError   `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, &apiResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
		RequestID: c.GetString(ctxKeyRequestID),
	})
}

func respondError(c *gin.Context, status int, code, message string, details ...string) {
	e := &apiError{Code: code, Message: message}
	if len(details) > 0 {
		e.Details = details[0]
	}
	c.AbortWithStatusJSON(status, &apiResponse{
		Success:   false,
		Error:     e,
		Timestamp: time.Now(),
		RequestID: c.GetString(ctxKeyRequestID),
	})
}
