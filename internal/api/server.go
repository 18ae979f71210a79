// Package api exposes the planner services over HTTP using gin.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/planner/internal/app"
	"github.com/thenoetrevino/planner/internal/config"
)

var registerValidatorOnce sync.Once

// Server is the planner HTTP server
type Server struct {
	app        *app.App
	router     *gin.Engine
	logger     *slog.Logger
	pagination config.PaginationConfig
	server     config.ServerConfig
}

// NewServer creates a new HTTP server wired to the application services
func NewServer(a *app.App, cfg *config.Config) *Server {
	registerValidatorOnce.Do(useJSONFieldNames)

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(a.Logger, a.Metrics))

	s := &Server{
		app:        a,
		router:     router,
		logger:     a.Logger,
		pagination: cfg.Pagination,
		server:     cfg.Server,
	}

	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api")
	{
		api.GET("/metrics", s.handleMetrics)

		projects := api.Group("/projects")
		projects.POST("", s.handleCreateProject)
		projects.GET("", s.handleListProjects)
		projects.POST("/import", s.handleImportProject)
		projects.GET("/:projectId", s.handleGetProject)
		projects.PATCH("/:projectId", s.handleUpdateProject)
		projects.DELETE("/:projectId", s.handleDeleteProject)

		tasks := api.Group("/tasks")
		tasks.POST("", s.handleCreateTask)
		tasks.GET("", s.handleListTasks)
		tasks.GET("/:taskId", s.handleGetTask)
		tasks.PATCH("/:taskId", s.handleUpdateTask)
		tasks.DELETE("/:taskId", s.handleDeleteTask)

		tags := api.Group("/tags")
		tags.POST("", s.handleCreateTag)
		tags.GET("", s.handleListTags)
		tags.GET("/:tagId", s.handleGetTag)
		tags.PATCH("/:tagId", s.handleUpdateTag)
		tags.DELETE("/:tagId", s.handleDeleteTag)

		notes := api.Group("/notes")
		notes.POST("", s.handleCreateNote)
		notes.GET("", s.handleListNotes)
		notes.GET("/:noteId", s.handleGetNote)
		notes.PATCH("/:noteId", s.handleUpdateNote)
		notes.DELETE("/:noteId", s.handleDeleteNote)

		actions := api.Group("/actions")
		actions.POST("", s.handleCreateAction)
		actions.GET("", s.handleListActions)
		actions.GET("/:actionId", s.handleGetAction)
		actions.PATCH("/:actionId", s.handleUpdateAction)
		actions.DELETE("/:actionId", s.handleDeleteAction)
	}

	router.NoRoute(func(c *gin.Context) {
		abortWithProblem(c, http.StatusNotFound, "No handler for "+c.Request.Method+" "+c.Request.URL.Path)
	})

	return s
}

// Handler returns the root http.Handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(s.server.WriteTimeoutSeconds) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(s.server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	s.logger.Info("shutting down http server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.app.Health(c.Request.Context()); err != nil {
		s.logger.Error("health check failed", "error", err)
		abortWithProblem(c, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.app.Metrics.GetSnapshot())
}
