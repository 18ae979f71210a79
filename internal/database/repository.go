package database

import (
	"context"
	"database/sql"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*ProjectRepo
	*TaskRepo
	*TagRepo
	*NoteRepo
	*ActionRepo

	db   *sql.DB
	inTx bool
}

var _ DataStore = (*Repository)(nil)

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	r := bind(db)
	r.db = db
	return r
}

func bind(q DBTX) *Repository {
	return &Repository{
		ProjectRepo: &ProjectRepo{q: q},
		TaskRepo:    &TaskRepo{q: q},
		TagRepo:     &TagRepo{q: q},
		NoteRepo:    &NoteRepo{q: q},
		ActionRepo:  &ActionRepo{q: q},
	}
}

// WithTx implements DataStore.
func (r *Repository) WithTx(ctx context.Context, fn func(DataStore) error) error {
	if r.inTx {
		return fn(r)
	}
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		txRepo := bind(tx)
		txRepo.db = r.db
		txRepo.inTx = true
		return fn(txRepo)
	})
}

// Ping checks that the underlying database is reachable
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
