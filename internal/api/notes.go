package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thenoetrevino/planner/internal/services/note"
)

type createNoteRequest struct {
	ProjectID *uuid.UUID `json:"projectId"`
	TaskID    *uuid.UUID `json:"taskId"`
	Body      string     `json:"body" binding:"max=20000"`
}

type updateNoteRequest struct {
	Body string `json:"body" binding:"max=20000"`
}

func (s *Server) handleCreateNote(c *gin.Context) {
	var req createNoteRequest
	if !bindJSON(c, &req) {
		return
	}

	n, err := s.app.NoteService.CreateNote(c.Request.Context(), note.CreateNoteRequest{
		Owner: note.Owner{ProjectID: req.ProjectID, TaskID: req.TaskID},
		Body:  req.Body,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.app.Metrics.IncItemsCreated()
	c.JSON(http.StatusCreated, n)
}

func (s *Server) handleListNotes(c *gin.Context) {
	projectID, ok := queryID(c, "projectId")
	if !ok {
		return
	}
	taskID, ok := queryID(c, "taskId")
	if !ok {
		return
	}
	page, ok := s.pageRequest(c)
	if !ok {
		return
	}

	result, err := s.app.NoteService.ListNotes(c.Request.Context(), note.Owner{ProjectID: projectID, TaskID: taskID}, page)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleGetNote(c *gin.Context) {
	id, ok := pathID(c, "noteId")
	if !ok {
		return
	}

	n, err := s.app.NoteService.GetNote(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (s *Server) handleUpdateNote(c *gin.Context) {
	id, ok := pathID(c, "noteId")
	if !ok {
		return
	}
	var req updateNoteRequest
	if !bindJSON(c, &req) {
		return
	}

	n, err := s.app.NoteService.UpdateNote(c.Request.Context(), id, req.Body)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (s *Server) handleDeleteNote(c *gin.Context) {
	id, ok := pathID(c, "noteId")
	if !ok {
		return
	}

	if err := s.app.NoteService.DeleteNote(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
