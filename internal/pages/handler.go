package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weekly-checklist/internal/checklist"
	"weekly-checklist/internal/model"
	"weekly-checklist/internal/render"
	"weekly-checklist/pkg/datemath"
	"weekly-checklist/pkg/log"
	"weekly-checklist/pkg/response"
)

// Renderer produces the static pages.
type Renderer interface {
	Home(data render.HomePage) (string, error)
	Today(currentWeekID string) (string, error)
	Setup(host, currentWeekID string) (string, error)
	Navigator(sections []model.NavigatorSection, currentWeekID string) (string, error)
}

// Handler serves the landing, setup and navigator pages.
type Handler struct {
	l        log.Logger
	uc       checklist.UseCase
	renderer Renderer
	calendar *datemath.Calendar
	links    []model.NavigatorSection
}

func New(l log.Logger, uc checklist.UseCase, renderer Renderer, calendar *datemath.Calendar, links []model.NavigatorSection) *Handler {
	return &Handler{
		l:        l,
		uc:       uc,
		renderer: renderer,
		calendar: calendar,
		links:    links,
	}
}

// RegisterRoutes mounts the page routes.
func RegisterRoutes(r gin.IRoutes, h *Handler) {
	r.GET("/", h.Home)
	r.GET("/today", h.Today)
	r.GET("/setup", h.Setup)
	r.GET("/navigator", h.Navigator)
}

// Home godoc
// @Summary  Home page
// @Tags     Pages
// @Produce  html
// @Success  200 {string} string "HTML document"
// @Router   / [GET]
func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	weeks, err := h.uc.ListWeeks(ctx)
	if err != nil {
		h.l.Errorf(ctx, "pages.Home uc.ListWeeks: %v", err)
		response.InternalError(c, err)
		return
	}

	h.write(c, "Home", func() (string, error) {
		return h.renderer.Home(render.HomePage{CurrentWeekID: weeks.CurrentWeekID, Weeks: weeks.WeekIDs})
	})
}

// Today godoc
// @Summary  Legacy landing page
// @Tags     Pages
// @Produce  html
// @Success  200 {string} string "HTML document"
// @Router   /today [GET]
func (h *Handler) Today(c *gin.Context) {
	current := h.calendar.CurrentWeekID()
	h.write(c, "Today", func() (string, error) { return h.renderer.Today(current) })
}

// Setup godoc
// @Summary  Connection setup guide
// @Tags     Pages
// @Produce  html
// @Success  200 {string} string "HTML document"
// @Router   /setup [GET]
func (h *Handler) Setup(c *gin.Context) {
	current := h.calendar.CurrentWeekID()
	host := c.Request.Host
	h.write(c, "Setup", func() (string, error) { return h.renderer.Setup(host, current) })
}

// Navigator godoc
// @Summary  Curated resource links
// @Tags     Pages
// @Produce  html
// @Success  200 {string} string "HTML document"
// @Router   /navigator [GET]
func (h *Handler) Navigator(c *gin.Context) {
	current := h.calendar.CurrentWeekID()
	h.write(c, "Navigator", func() (string, error) { return h.renderer.Navigator(h.links, current) })
}

func (h *Handler) write(c *gin.Context, page string, renderFn func() (string, error)) {
	body, err := renderFn()
	if err != nil {
		h.l.Errorf(c.Request.Context(), "pages.%s: %v", page, err)
		response.InternalError(c, err)
		return
	}
	response.HTML(c, http.StatusOK, body)
}
