// internal/models/errors.go
package models

import (
	"github.com/javajoker/product-service/internal/i18n"
)

// DataValidationError reports input that cannot become a valid Product.
type DataValidationError struct {
	Key     string
	Args    []interface{}
	Details interface{}
}

func NewDataValidationError(key string, args ...interface{}) *DataValidationError {
	return &DataValidationError{Key: key, Args: args}
}

func (e *DataValidationError) Error() string {
	return e.Message(i18n.DefaultLang)
}

func (e *DataValidationError) Message(lang string) string {
	return i18n.T(lang, e.Key, e.Args...)
}
