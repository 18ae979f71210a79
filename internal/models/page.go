package models

// DefaultPageSize is used when a caller does not ask for a specific size
const DefaultPageSize = 20

// PageRequest selects a zero-based page of a collection
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the number of rows to skip
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Normalize clamps the request into a valid range
func (p PageRequest) Normalize(maxSize int) PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if maxSize > 0 && p.Size > maxSize {
		p.Size = maxSize
	}
	return p
}

// Page is one slice of an ordered collection
type Page[T any] struct {
	Content       []T `json:"content"`
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// NewPage assembles a page from its content and the total element count
func NewPage[T any](content []T, req PageRequest, total int) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if req.Size > 0 {
		pages = (total + req.Size - 1) / req.Size
	}
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
