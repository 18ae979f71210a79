package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thenoetrevino/planner/internal/services/tag"
	"github.com/thenoetrevino/planner/internal/services/task"
)

// Tasks and tags accept the same payloads.

type createItemRequest struct {
	ProjectID   uuid.UUID  `json:"projectId" binding:"required"`
	Title       string     `json:"title" binding:"max=160"`
	Description string     `json:"description"`
	IsActivity  bool       `json:"isActivity"`
	Duration    *int       `json:"duration"`
	StartAt     *time.Time `json:"startAt"`
	EndAt       *time.Time `json:"endAt"`
	Color       string     `json:"color" binding:"max=32"`
}

type updateItemRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=160"`
	Description *string    `json:"description"`
	IsActivity  *bool      `json:"isActivity"`
	Duration    *int       `json:"duration"`
	StartAt     *time.Time `json:"startAt"`
	EndAt       *time.Time `json:"endAt"`
	Color       *string    `json:"color" binding:"omitempty,max=32"`
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req createItemRequest
	if !bindJSON(c, &req) {
		return
	}

	t, err := s.app.TaskService.CreateTask(c.Request.Context(), task.CreateTaskRequest{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		IsActivity:  req.IsActivity,
		Duration:    req.Duration,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
		Color:       req.Color,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.app.Metrics.IncItemsCreated()
	c.JSON(http.StatusCreated, t)
}

func (s *Server) handleListTasks(c *gin.Context) {
	projectID, ok := requiredQueryID(c, "projectId")
	if !ok {
		return
	}
	page, ok := s.pageRequest(c)
	if !ok {
		return
	}

	result, err := s.app.TaskService.ListTasks(c.Request.Context(), projectID, c.Query("q"), page)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleGetTask(c *gin.Context) {
	id, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	t, err := s.app.TaskService.GetTask(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	id, ok := pathID(c, "taskId")
	if !ok {
		return
	}
	var req updateItemRequest
	if !bindJSON(c, &req) {
		return
	}

	t, err := s.app.TaskService.UpdateTask(c.Request.Context(), task.UpdateTaskRequest{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		IsActivity:  req.IsActivity,
		Duration:    req.Duration,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
		Color:       req.Color,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	id, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	if err := s.app.TaskService.DeleteTask(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleCreateTag(c *gin.Context) {
	var req createItemRequest
	if !bindJSON(c, &req) {
		return
	}

	t, err := s.app.TagService.CreateTag(c.Request.Context(), tag.CreateTagRequest{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		IsActivity:  req.IsActivity,
		Duration:    req.Duration,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
		Color:       req.Color,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.app.Metrics.IncItemsCreated()
	c.JSON(http.StatusCreated, t)
}

func (s *Server) handleListTags(c *gin.Context) {
	projectID, ok := requiredQueryID(c, "projectId")
	if !ok {
		return
	}
	page, ok := s.pageRequest(c)
	if !ok {
		return
	}

	result, err := s.app.TagService.ListTags(c.Request.Context(), projectID, c.Query("q"), page)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleGetTag(c *gin.Context) {
	id, ok := pathID(c, "tagId")
	if !ok {
		return
	}

	t, err := s.app.TagService.GetTag(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) handleUpdateTag(c *gin.Context) {
	id, ok := pathID(c, "tagId")
	if !ok {
		return
	}
	var req updateItemRequest
	if !bindJSON(c, &req) {
		return
	}

	t, err := s.app.TagService.UpdateTag(c.Request.Context(), tag.UpdateTagRequest{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		IsActivity:  req.IsActivity,
		Duration:    req.Duration,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
		Color:       req.Color,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) handleDeleteTag(c *gin.Context) {
	id, ok := pathID(c, "tagId")
	if !ok {
		return
	}

	if err := s.app.TagService.DeleteTag(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
