package database

import (
	"database/sql/driver"
	"strings"

	"modernc.org/sqlite"
)

// foldCase is the key used wherever names or search text compare without
// regard to case. SQLite's NOCASE and LIKE only fold ASCII.
func foldCase(s string) string {
	return strings.ToLower(s)
}

// projectNameKey is the value the unique index on projects.name_key holds
func projectNameKey(name string) string {
	return foldCase(strings.TrimSpace(name))
}

// fold(x) exposes foldCase to SQL for migrations and search queries
func init() {
	sqlite.MustRegisterDeterministicScalarFunction("fold", 1,
		func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
			switch v := args[0].(type) {
			case string:
				return foldCase(v), nil
			case []byte:
				return foldCase(string(v)), nil
			default:
				return v, nil
			}
		})
}
