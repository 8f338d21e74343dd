// internal/middleware/errors.go
package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/product-service/internal/i18n"
	"github.com/javajoker/product-service/internal/models"
	"github.com/javajoker/product-service/internal/services"
	"github.com/javajoker/product-service/internal/utils"
)

// ErrorHandler renders the last error a handler attached to the context.
// Handlers only call c.Error and return; status codes are decided here.
func ErrorHandler(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		lang := utils.GetLangFromContext(c)

		var (
			validationErr *models.DataValidationError
			notFoundErr   *services.ProductNotFoundError
			httpErr       *utils.HTTPError
		)

		switch {
		case errors.As(err, &validationErr):
			log.WithField("request_id", utils.GetRequestIDFromContext(c)).Warn(validationErr.Error())
			utils.BadRequestResponse(c, validationErr.Message(lang), validationErr.Details)
		case errors.As(err, &notFoundErr):
			log.WithField("request_id", utils.GetRequestIDFromContext(c)).Info(notFoundErr.Error())
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyProductNotFound, notFoundErr.ID))
		case errors.As(err, &httpErr):
			log.WithField("request_id", utils.GetRequestIDFromContext(c)).Warn(httpErr.Error())
			utils.ErrorResponse(c, httpErr.Status, httpErr.Message(lang), nil)
		default:
			log.WithError(err).WithField("request_id", utils.GetRequestIDFromContext(c)).Error("Unhandled request error")
			utils.InternalErrorResponse(c)
		}
	}
}

func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(utils.NewNotFoundError(i18n.KeyRequestNotFound))
		c.Abort()
	}
}

func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.MethodNotAllowedResponse(c)
	}
}

// Recovery turns panics into the generic 500 body and logs the cause.
func Recovery(log *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(log.Out, func(c *gin.Context, recovered interface{}) {
		log.WithFields(logrus.Fields{
			"request_id": utils.GetRequestIDFromContext(c),
			"panic":      recovered,
		}).Error("Recovered from panic")
		utils.InternalErrorResponse(c)
	})
}
