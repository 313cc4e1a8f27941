package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"weekly-checklist/internal/checklist"
	"weekly-checklist/internal/middleware"
	"weekly-checklist/internal/model"
	"weekly-checklist/internal/render"
	"weekly-checklist/pkg/datemath"
	"weekly-checklist/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration

	// Checklist domain
	checklistUC checklist.UseCase
	renderer    *render.Renderer
	calendar    *datemath.Calendar
	links       []model.NavigatorSection
	middleware  middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Checklist domain
	ChecklistUC checklist.UseCase
	Renderer    *render.Renderer
	Calendar    *datemath.Calendar
	Links       []model.NavigatorSection
	Middleware  middleware.Config
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		readTimeout:     cfg.ReadTimeout,
		writeTimeout:    cfg.WriteTimeout,
		shutdownTimeout: cfg.ShutdownTimeout,
		checklistUC:     cfg.ChecklistUC,
		renderer:        cfg.Renderer,
		calendar:        cfg.Calendar,
		links:           cfg.Links,
		middleware:      cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.checklistUC == nil {
		return errors.New("checklist use case is required")
	}
	if srv.renderer == nil {
		return errors.New("renderer is required")
	}
	if srv.calendar == nil {
		return errors.New("calendar is required")
	}
	return nil
}
