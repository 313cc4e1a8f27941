package http

import (
	"github.com/gin-gonic/gin"

	"weekly-checklist/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only /import writes, so it alone carries the body cap and the rate limit.
func RegisterRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware) {
	r.GET("/checklist", h.View)
	r.POST("/import", mw.RateLimit(), mw.BodyLimit(), h.Import)
	r.GET("/export", h.Export)
}
