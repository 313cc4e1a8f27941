package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	checklistHTTP "weekly-checklist/internal/checklist/delivery/http"
	"weekly-checklist/internal/middleware"
	"weekly-checklist/internal/pages"
)

// setupChecklistDomain creates the checklist and page handlers and registers their routes.
//
// Pattern to follow when adding a new domain:
//  1. Build the UseCase in main (it owns storage lifetimes) and pass it through Config
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, ...)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(r, h, mw)
func (srv HTTPServer) setupChecklistDomain(ctx context.Context, r gin.IRoutes, mw middleware.Middleware) error {
	// 1. HTTP Handlers
	h := checklistHTTP.New(srv.l, srv.checklistUC, srv.renderer)
	p := pages.New(srv.l, srv.checklistUC, srv.renderer, srv.calendar, srv.links)

	// 2. Routes: /checklist, /import, /export and the static pages
	checklistHTTP.RegisterRoutes(r, h, mw)
	pages.RegisterRoutes(r, p)

	srv.l.Infof(ctx, "Checklist domain registered")
	return nil
}
