package middlewares

import "github.com/gin-gonic/gin"

// SecurityHeaders выставляет базовые заголовки безопасности для JSON API.
func SecurityHeaders(c *gin.Context) {
	h := c.Writer.Header()
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("X-Frame-Options", "SAMEORIGIN")
	h.Set("X-DNS-Prefetch-Control", "off")
	h.Set("Referrer-Policy", "no-referrer")
	h.Set("Strict-Transport-Security", "max-age=15552000; includeSubDomains")
	h.Set("Cross-Origin-Opener-Policy", "same-origin")
	c.Next()
}
