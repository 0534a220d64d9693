package middleware

import "github.com/gin-gonic/gin"

// SecurityHeadersMiddleware sets standard hardening headers on every
// response. The offer pages are rendered by the frontend, so the API only
// needs the defensive basics.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
