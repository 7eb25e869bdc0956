package middleware

import (
	"workbridge_backend/internal/i18n"

	"github.com/gin-gonic/gin"
)

// LanguageMiddleware attaches a translation provider to the request context.
// An explicit ?lang= wins over Accept-Language; unsupported values fall back
// to the default language.
func LanguageMiddleware(resolver *i18n.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := i18n.Normalize(c.Query("lang"))
		if !ok {
			lang = i18n.Match(c.GetHeader("Accept-Language"))
		}

		provider := i18n.NewProvider(resolver, lang)
		c.Request = c.Request.WithContext(i18n.WithProvider(c.Request.Context(), provider))
		c.Header("Content-Language", provider.Language())
		c.Next()
	}
}
