// Package catalog implements the gateway contract on a local SQLite
// database.
package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	"github.com/avdex/avdex/internal/gateway"
)

//go:embed schema.sql
var schema string

// querier abstracts *sql.DB and *sql.Tx for shared query logic.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Store provides access to the catalog database.
type Store struct {
	db *sql.DB
}

var _ gateway.Gateway = (*Store)(nil)

// NewStore creates a store on an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Init applies the schema. Safe to call on an existing database.
func (s *Store) Init() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// mapSQLiteError converts SQLite errors to the gateway's error types.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return gateway.ErrNotFound
	}
	// modernc.org/sqlite wraps errors; check error message for constraint violations
	errStr := err.Error()
	if strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "PRIMARY KEY constraint failed") {
		return gateway.ErrDuplicate
	}
	if strings.Contains(errStr, "FOREIGN KEY constraint failed") ||
		strings.Contains(errStr, "CHECK constraint failed") {
		return gateway.ErrConstraint
	}
	return err
}

// placeholders returns "?, ?, ..." for n arguments.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// int64Args widens an id slice for variadic query arguments.
func int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
