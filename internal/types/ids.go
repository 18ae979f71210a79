package types

import "github.com/google/uuid"

// ID type aliases give semantic meaning to the UUIDs passed between layers.
// They are aliases, not new types, so uuid helpers and the sql driver work unchanged.

// ProjectID identifies a unique project in the system
type ProjectID = uuid.UUID

// TaskID identifies a unique task within a project
type TaskID = uuid.UUID

// TagID identifies a unique tag within a project
type TagID = uuid.UUID

// NoteID identifies a note attached to a project or a task
type NoteID = uuid.UUID

// ActionID identifies a day-numbered action within a task
type ActionID = uuid.UUID

// NewID returns a fresh random identifier for any entity
func NewID() uuid.UUID {
	return uuid.New()
}

// ParseID parses the canonical textual form of an identifier
func ParseID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
