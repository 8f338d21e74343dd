// internal/middleware/content_type.go
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/product-service/internal/utils"
)

// RequireContentType rejects requests whose media type differs from
// mediaType. Parameters such as charset are ignored.
func RequireContentType(mediaType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() != mediaType {
			_ = c.Error(utils.NewUnsupportedMediaTypeError(mediaType))
			c.Abort()
			return
		}
		c.Next()
	}
}
