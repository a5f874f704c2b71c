package middleware

import (
	"net/http"

	"hospital-management-api/internal/config"

	"github.com/gin-gonic/gin"
)

// CORS returns a middleware that emits cross-origin headers. An allowed
// origin of "*" accepts every origin without credentials.
func CORS(cfg *config.Config) gin.HandlerFunc {
	allowAll := false
	for _, allowedOrigin := range cfg.CORS.AllowedOrigins {
		if allowedOrigin == "*" {
			allowAll = true
			break
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		// Check if origin is in allowed list
		allowed := false
		for _, allowedOrigin := range cfg.CORS.AllowedOrigins {
			if origin != "" && origin == allowedOrigin {
				allowed = true
				break
			}
		}

		switch {
		case allowAll:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		case allowed:
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Add("Vary", "Origin")
		}

		// Handle preflight OPTIONS request
		if c.Request.Method == http.MethodOptions {
			if allowAll || allowed {
				c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,HEAD,PUT,PATCH,POST,DELETE")
				if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
					c.Writer.Header().Set("Access-Control-Allow-Headers", requested)
					c.Writer.Header().Add("Vary", "Access-Control-Request-Headers")
				}
				c.Writer.Header().Set("Access-Control-Max-Age", "86400")
			}
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
