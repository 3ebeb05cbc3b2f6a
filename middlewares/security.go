package middlewares

import (
	"github.com/gin-gonic/gin"
)

// apiHeaders are sent with every response. Nothing served here is HTML, so
// framing, embedding and caching are all refused.
var apiHeaders = map[string]string{
	"X-Content-Type-Options":  "nosniff",
	"X-Frame-Options":         "DENY",
	"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
	"Referrer-Policy":         "no-referrer",
	"Cache-Control":           "no-store",
}

const hstsValue = "max-age=31536000; includeSubDomains"

func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		for name, value := range apiHeaders {
			h.Set(name, value)
		}
		if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
			h.Set("Strict-Transport-Security", hstsValue)
		}

		c.Next()
	}
}
