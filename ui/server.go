package ui

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"time"

	"spacexdash/domain/launch"
	"spacexdash/internal"

	"github.com/gin-gonic/gin"
)

// Asset locations inside the filesystem handed to NewServer
const (
	templatesDir = "ui/templates"
	staticDir    = "ui/static"
	introFile    = "ui/content/intro.md"
)

// Server represents the web server for the launch dashboard
type Server struct {
	router    *gin.Engine
	table     *launch.Table
	layout    Layout
	templates *template.Template
	assets    fs.FS
	logger    *internal.Logger
}

// NewServer creates the dashboard server over a loaded, read-only table.
// assets must contain the ui/templates and ui/static trees.
func NewServer(assets fs.FS, table *launch.Table, logger *internal.Logger) (*Server, error) {
	if table == nil {
		return nil, fmt.Errorf("launch table is required")
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}

	s := &Server{
		router: gin.Default(),
		table:  table,
		layout: BuildLayout(table),
		assets: assets,
		logger: logger,
	}

	if err := s.parseTemplates(); err != nil {
		return nil, err
	}
	if md, err := fs.ReadFile(assets, introFile); err == nil {
		s.layout.Intro = RenderMarkdown(md)
	} else {
		logger.Debug("[Server] No intro text at %s: %v", introFile, err)
	}

	if err := s.setupMiddleware(); err != nil {
		return nil, err
	}
	s.setupRoutes()

	logger.Info("[Server] Dashboard ready with %d launches across %d sites", table.Len(), len(table.Sites()))
	return s, nil
}

func (s *Server) parseTemplates() error {
	templatesFS, err := fs.Sub(s.assets, templatesDir)
	if err != nil {
		return fmt.Errorf("failed to create templates filesystem: %w", err)
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"styleAttr": func(style map[string]string) template.CSS {
			css := ""
			for _, key := range []string{"text-align", "color", "font-size"} {
				if v, ok := style[key]; ok {
					css += key + ": " + v + "; "
				}
			}
			return template.CSS(css)
		},
	}

	s.templates, err = template.New("").Funcs(funcMap).ParseFS(templatesFS, "*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	return nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	api.GET("/layout", s.handleLayout)
	api.GET("/dataset", s.handleDataset)
	api.GET("/charts/pie", s.handlePieChart)
	api.GET("/charts/scatter", s.handleScatterPlot)
	api.GET("/export/scatter.xlsx", s.handleScatterExport)

	// Server-side renderings for clients without JavaScript
	s.router.GET("/charts/pie.svg", s.handlePieSVG)
	s.router.GET("/charts/scatter.svg", s.handleScatterSVG)
}

// Handler exposes the router, mainly for tests and custom listeners
func (s *Server) Handler() http.Handler {
	return s.router
}

// Layout returns the widget tree served by the dashboard
func (s *Server) Layout() Layout {
	return s.layout
}

// Run serves on addr until ctx is cancelled, then shuts down within shutdownTimeout
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting SpaceX launch dashboard on http://localhost%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("[Server] Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// Template helpers
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, templateName, data); err != nil {
		s.logger.Error("Template error: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
