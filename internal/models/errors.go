package models

import "errors"

// Error kinds. Every domain error satisfies errors.Is against exactly one of these.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
	ErrConflict   = errors.New("conflict")
)

// DomainError carries a human-readable detail and the kind used to pick a status code
type DomainError struct {
	Kind   error
	Detail string
}

func (e *DomainError) Error() string {
	if e == nil || e.Detail == "" {
		return "domain error"
	}
	return e.Detail
}

// Is makes errors.Is(err, ErrNotFound) and friends work for wrapped domain errors
func (e *DomainError) Is(target error) bool {
	return target == e.Kind
}

// NotFound builds an error for a missing entity
func NotFound(detail string) *DomainError {
	return &DomainError{Kind: ErrNotFound, Detail: detail}
}

// BadRequest builds an error for invalid input or a violated invariant
func BadRequest(detail string) *DomainError {
	return &DomainError{Kind: ErrBadRequest, Detail: detail}
}

// Conflict builds an error for a store-level uniqueness violation
func Conflict(detail string) *DomainError {
	return &DomainError{Kind: ErrConflict, Detail: detail}
}

// Detail returns the human-readable detail of the first DomainError in err's chain
func Detail(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Detail
	}
	return ""
}
