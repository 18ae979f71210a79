package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/planner/internal/models"
)

const problemContentType = "application/problem+json"

// Problem is an RFC 7807 problem detail
type Problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func abortWithProblem(c *gin.Context, status int, detail string) {
	c.Header("Content-Type", problemContentType)
	c.AbortWithStatusJSON(status, Problem{
		Type:   "about:blank",
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	})
}

// writeError maps a service error to a problem response. Unknown errors are
// logged and reported as 500 without leaking their text.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		abortWithProblem(c, http.StatusNotFound, detailOr(err, "Resource not found"))
	case errors.Is(err, models.ErrBadRequest):
		abortWithProblem(c, http.StatusBadRequest, detailOr(err, "Bad request"))
	case errors.Is(err, models.ErrConflict):
		abortWithProblem(c, http.StatusConflict, detailOr(err, "Conflict"))
	default:
		s.logger.Error("request failed",
			"request_id", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		abortWithProblem(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

func detailOr(err error, fallback string) string {
	if d := models.Detail(err); d != "" {
		return d
	}
	return fallback
}

// bindJSON decodes the body into dst and writes a 400 problem on failure
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithProblem(c, http.StatusBadRequest, bindErrorDetail(err))
		return false
	}
	return true
}

// bindErrorDetail lists validation failures as "field: message" joined by "; "
func bindErrorDetail(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), validationMessage(fe)))
		}
		return strings.Join(parts, "; ")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("%s: must be of type %s", typeErr.Field, typeErr.Type)
	}

	return "Malformed request body: " + err.Error()
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// useJSONFieldNames makes validation errors report the JSON field name
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}
