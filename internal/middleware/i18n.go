// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/product-service/internal/i18n"
	"github.com/javajoker/product-service/internal/utils"
)

func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(utils.ContextKeyLang, parseAcceptLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// parseAcceptLanguage only looks at the first preference,
// e.g. "zh-TW,zh;q=0.9,en;q=0.8" yields zh_TW.
func parseAcceptLanguage(header string) string {
	if header == "" {
		return i18n.DefaultLang
	}

	first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])
	switch first {
	case "zh-TW", "zh-Hant", "zh_TW", "zh-Hant-TW":
		return "zh_TW"
	default:
		return i18n.DefaultLang
	}
}
