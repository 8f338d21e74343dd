// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/product-service/internal/i18n"
)

const (
	ContextKeyLang      = "lang"
	ContextKeyRequestID = "request_id"
)

type APIError struct {
	Status  int         `json:"status"`
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func ErrorResponse(c *gin.Context, statusCode int, message string, details interface{}) {
	c.AbortWithStatusJSON(statusCode, APIError{
		Status:  statusCode,
		Error:   http.StatusText(statusCode),
		Message: message,
		Details: details,
	})
}

func BadRequestResponse(c *gin.Context, message string, details interface{}) {
	ErrorResponse(c, http.StatusBadRequest, message, details)
}

func NotFoundResponse(c *gin.Context, message string) {
	if message == "" {
		message = i18n.T(GetLangFromContext(c), i18n.KeyRequestNotFound)
	}
	ErrorResponse(c, http.StatusNotFound, message, nil)
}

func MethodNotAllowedResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusMethodNotAllowed, i18n.T(GetLangFromContext(c), i18n.KeyRequestMethodNotAllowed), nil)
}

func UnsupportedMediaTypeResponse(c *gin.Context, mediaType string) {
	ErrorResponse(c, http.StatusUnsupportedMediaType, i18n.T(GetLangFromContext(c), i18n.KeyRequestUnsupportedMedia, mediaType), nil)
}

func TooManyRequestsResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusTooManyRequests, i18n.T(GetLangFromContext(c), i18n.KeyRequestRateLimited), nil)
}

// InternalErrorResponse never echoes the underlying error to the client.
func InternalErrorResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, i18n.T(GetLangFromContext(c), i18n.KeyServerInternalError), nil)
}

func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get(ContextKeyLang); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return i18n.DefaultLang
}

func GetRequestIDFromContext(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}
