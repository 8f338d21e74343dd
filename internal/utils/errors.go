// internal/utils/errors.go
package utils

import (
	"fmt"
	"net/http"

	"github.com/javajoker/product-service/internal/i18n"
)

// HTTPError is a request-level failure that already knows its status code
// and how to describe itself in any supported language.
type HTTPError struct {
	Status int
	Key    string
	Args   []interface{}
	Err    error
}

func (e *HTTPError) Error() string {
	msg := i18n.T(i18n.DefaultLang, e.Key, e.Args...)
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func (e *HTTPError) Message(lang string) string {
	return i18n.T(lang, e.Key, e.Args...)
}

func NewBadRequestError(key string, err error, args ...interface{}) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Key: key, Args: args, Err: err}
}

func NewNotFoundError(key string, args ...interface{}) *HTTPError {
	return &HTTPError{Status: http.StatusNotFound, Key: key, Args: args}
}

func NewUnsupportedMediaTypeError(mediaType string) *HTTPError {
	return &HTTPError{Status: http.StatusUnsupportedMediaType, Key: i18n.KeyRequestUnsupportedMedia, Args: []interface{}{mediaType}}
}
