package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimit caps the request body. Reads past the cap fail with *http.MaxBytesError.
func (m Middleware) BodyLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.maxBodyBytes > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, m.maxBodyBytes)
		}
		c.Next()
	}
}
