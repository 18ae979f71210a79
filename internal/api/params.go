package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thenoetrevino/planner/internal/models"
)

func invalidParam(c *gin.Context, name string) {
	abortWithProblem(c, http.StatusBadRequest, fmt.Sprintf("Invalid value for parameter '%s'", name))
}

// pathID parses a UUID path parameter, writing a 400 problem when malformed
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		invalidParam(c, name)
		return uuid.Nil, false
	}
	return id, true
}

// queryID parses an optional UUID query parameter. A nil result means the
// parameter was absent.
func queryID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw, present := c.GetQuery(name)
	if !present || raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		invalidParam(c, name)
		return nil, false
	}
	return &id, true
}

// requiredQueryID is queryID for parameters that must be present
func requiredQueryID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, ok := queryID(c, name)
	if !ok {
		return uuid.Nil, false
	}
	if id == nil {
		abortWithProblem(c, http.StatusBadRequest, fmt.Sprintf("Required parameter '%s' is missing", name))
		return uuid.Nil, false
	}
	return *id, true
}

// pageRequest reads page and size, falling back to the configured defaults
func (s *Server) pageRequest(c *gin.Context) (models.PageRequest, bool) {
	req := models.PageRequest{Page: 0, Size: s.pagination.DefaultSize}

	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			invalidParam(c, "page")
			return req, false
		}
		req.Page = n
	}
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			invalidParam(c, "size")
			return req, false
		}
		req.Size = n
	}

	return req.Normalize(s.pagination.MaxSize), true
}
