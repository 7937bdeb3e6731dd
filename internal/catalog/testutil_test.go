package catalog

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/avdex/avdex/internal/media"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := NewStore(db)
	if err := store.Init(); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return store
}

// ptr is a helper to create pointer to value
func ptr[T any](v T) *T {
	return &v
}

func mustInsertVideo(t *testing.T, s *Store, v *media.Video) int64 {
	t.Helper()
	if err := s.InsertVideo(context.Background(), v); err != nil {
		t.Fatalf("insert video: %v", err)
	}
	return v.ID
}

func mustInsertActress(t *testing.T, s *Store, a *media.Actress) int64 {
	t.Helper()
	if err := s.InsertActress(context.Background(), a); err != nil {
		t.Fatalf("insert actress: %v", err)
	}
	return a.ID
}

func mustExec(t *testing.T, s *Store, query string, args ...any) {
	t.Helper()
	if _, err := s.db.Exec(query, args...); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}
