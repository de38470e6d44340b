package middleware

import (
	"github.com/bbapp/bulletin-backend/pkg/i18n"
	"github.com/gin-gonic/gin"
)

const (
	localeKey = "locale"
	bundleKey = "i18n_bundle"
)

// I18n picks the response language from Accept-Language and stores it, with
// the bundle, in the gin context
func I18n(bundle *i18n.Bundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := bundle.Match(c.GetHeader("Accept-Language"))
		c.Set(localeKey, locale)
		c.Set(bundleKey, bundle)
		c.Header("Content-Language", string(locale))
		c.Next()
	}
}

// GetLocale returns the locale chosen by I18n, or English
func GetLocale(c *gin.Context) i18n.Locale {
	if v, exists := c.Get(localeKey); exists {
		if locale, ok := v.(i18n.Locale); ok {
			return locale
		}
	}
	return i18n.LocaleEn
}

// Translate renders key in the request's locale. Without the I18n
// middleware the key is returned unchanged.
func Translate(c *gin.Context, key string) string {
	v, exists := c.Get(bundleKey)
	if !exists {
		return key
	}
	bundle, ok := v.(*i18n.Bundle)
	if !ok {
		return key
	}
	return bundle.T(GetLocale(c), key)
}
