package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thenoetrevino/planner/internal/services/action"
)

type createActionRequest struct {
	TaskID  uuid.UUID `json:"taskId" binding:"required"`
	Details string    `json:"details" binding:"max=10000"`
	Day     *int      `json:"day"`
}

type updateActionRequest struct {
	Details *string `json:"details" binding:"omitempty,max=10000"`
	Day     *int    `json:"day"`
}

func (s *Server) handleCreateAction(c *gin.Context) {
	var req createActionRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := s.app.ActionService.CreateAction(c.Request.Context(), action.CreateActionRequest{
		TaskID:  req.TaskID,
		Details: req.Details,
		Day:     req.Day,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.app.Metrics.IncItemsCreated()
	c.JSON(http.StatusCreated, a)
}

func (s *Server) handleListActions(c *gin.Context) {
	taskID, ok := requiredQueryID(c, "taskId")
	if !ok {
		return
	}
	page, ok := s.pageRequest(c)
	if !ok {
		return
	}

	result, err := s.app.ActionService.ListActions(c.Request.Context(), taskID, c.Query("q"), page)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleGetAction(c *gin.Context) {
	id, ok := pathID(c, "actionId")
	if !ok {
		return
	}

	a, err := s.app.ActionService.GetAction(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s *Server) handleUpdateAction(c *gin.Context) {
	id, ok := pathID(c, "actionId")
	if !ok {
		return
	}
	var req updateActionRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := s.app.ActionService.UpdateAction(c.Request.Context(), action.UpdateActionRequest{
		ID:      id,
		Details: req.Details,
		Day:     req.Day,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s *Server) handleDeleteAction(c *gin.Context) {
	id, ok := pathID(c, "actionId")
	if !ok {
		return
	}

	if err := s.app.ActionService.DeleteAction(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
