package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound is returned when a lookup, update or delete matches no row
	ErrNotFound = errors.New("record not found")

	// ErrUniqueViolation is returned when a write hits a unique index
	ErrUniqueViolation = errors.New("unique constraint violation")
)

// timeLayout is fixed-width so that lexical order of stored instants is time order
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var timeNow = func() time.Time { return time.Now().UTC() }

// DBTX is satisfied by both *sql.DB and *sql.Tx
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// scanner is satisfied by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// formatTime renders an instant for storage
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// timeText scans a stored instant back into a time.Time
type timeText struct {
	t *time.Time
}

func (s timeText) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*s.t = v.UTC()
		return nil
	default:
		return fmt.Errorf("cannot scan %T into time", src)
	}
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return fmt.Errorf("invalid stored time %q: %w", raw, err)
	}
	*s.t = parsed.UTC()
	return nil
}

// nullUUID converts an optional id to its nullable column form
func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

// uuidPtr converts a nullable column back to an optional id
func uuidPtr(n uuid.NullUUID) *uuid.UUID {
	if !n.Valid {
		return nil
	}
	id := n.UUID
	return &id
}

// likePattern builds a substring pattern escaped with '\'. The query is
// case-folded, so it must be matched against fold(column).
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(foldCase(q)) + "%"
}

// notFoundIfNoRows maps sql.ErrNoRows to ErrNotFound, wrapping with context
func notFoundIfNoRows(err error, what string, id uuid.UUID) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("failed to get %s %s: %w", what, id, err)
}

// requireAffected returns ErrNotFound when a write touched no rows
func requireAffected(result sql.Result, what string, id uuid.UUID) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for %s %s: %w", what, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return nil
}

// isUniqueViolation reports whether err came from a UNIQUE index
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}

// count runs a COUNT(*) style query
func count(ctx context.Context, q DBTX, query string, args ...any) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
