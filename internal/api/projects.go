package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thenoetrevino/planner/internal/services/project"
	"github.com/thenoetrevino/planner/internal/types"
)

type createProjectRequest struct {
	Name        string     `json:"name" binding:"max=160"`
	Description string     `json:"description" binding:"max=10000"`
	StartDate   types.Date `json:"startDate"`
}

type updateProjectRequest struct {
	Name        *string     `json:"name" binding:"omitempty,max=160"`
	Description *string     `json:"description" binding:"omitempty,max=10000"`
	StartDate   *types.Date `json:"startDate"`
}

type importProjectRequest struct {
	SourceProjectID uuid.UUID `json:"sourceProjectId" binding:"required"`
	NewProjectName  string    `json:"newProjectName" binding:"required,max=160"`
	Description     *string   `json:"description" binding:"omitempty,max=10000"`
	ImportTasks     bool      `json:"importTasks"`
	ImportTags      bool      `json:"importTags"`
	ImportNotes     bool      `json:"importNotes"`
	ImportActions   bool      `json:"importActions"`
}

func (s *Server) handleCreateProject(c *gin.Context) {
	var req createProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := s.app.ProjectService.CreateProject(c.Request.Context(), project.CreateProjectRequest{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) handleListProjects(c *gin.Context) {
	page, ok := s.pageRequest(c)
	if !ok {
		return
	}

	result, err := s.app.ProjectService.ListProjects(c.Request.Context(), page)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleGetProject(c *gin.Context) {
	id, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	p, err := s.app.ProjectService.GetProject(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleUpdateProject(c *gin.Context) {
	id, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	var req updateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := s.app.ProjectService.UpdateProject(c.Request.Context(), project.UpdateProjectRequest{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleDeleteProject(c *gin.Context) {
	id, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	if err := s.app.ProjectService.DeleteProject(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleImportProject(c *gin.Context) {
	var req importProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := s.app.ProjectService.ImportProject(c.Request.Context(), project.ImportProjectRequest{
		SourceProjectID: req.SourceProjectID,
		NewProjectName:  req.NewProjectName,
		Description:     req.Description,
		ImportTasks:     req.ImportTasks,
		ImportTags:      req.ImportTags,
		ImportNotes:     req.ImportNotes,
		ImportActions:   req.ImportActions,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
