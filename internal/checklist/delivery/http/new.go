package http

import (
	"github.com/gin-gonic/gin"

	"weekly-checklist/internal/checklist"
	"weekly-checklist/internal/model"
	"weekly-checklist/pkg/log"
)

// Handler is the public interface for the checklist HTTP delivery layer.
type Handler interface {
	View(c *gin.Context)
	Import(c *gin.Context)
	Export(c *gin.Context)
}

// Renderer produces the checklist page.
type Renderer interface {
	Checklist(cl *model.WeeklyChecklist, weekID string) (string, error)
}

type handler struct {
	l        log.Logger
	uc       checklist.UseCase
	renderer Renderer
}

// New creates a new HTTP handler for the checklist domain.
func New(l log.Logger, uc checklist.UseCase, renderer Renderer) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		renderer: renderer,
	}
}
