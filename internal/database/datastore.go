package database

import "context"

// DataStore defines the unified interface for all data operations needed by
// the services. It is composed of smaller, domain-specific interfaces so
// consumers can depend on only what they use.
type DataStore interface {
	ProjectRepository
	TaskRepository
	TagRepository
	NoteRepository
	ActionRepository

	// WithTx runs fn against a store bound to a single transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	// Calling WithTx on a store that is already transactional reuses it.
	WithTx(ctx context.Context, fn func(DataStore) error) error

	Ping(ctx context.Context) error
}
