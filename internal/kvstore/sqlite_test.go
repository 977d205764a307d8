package kvstore

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func setupSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "trizen-test.db")
	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteGetMissingKey(t *testing.T) {
	store := setupSQLite(t)
	ctx := context.Background()

	value, ok, err := store.Get(ctx, KeyTasks)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || value != "" {
		t.Fatalf("expected absent key, got ok=%v value=%q", ok, value)
	}
}

func TestSQLiteSetGetOverwrite(t *testing.T) {
	store := setupSQLite(t)
	ctx := context.Background()

	if err := store.Set(ctx, KeyTheme, "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := store.Get(ctx, KeyTheme)
	if err != nil || !ok || value != "dark" {
		t.Fatalf("unexpected get result: %q %v %v", value, ok, err)
	}

	if err := store.Set(ctx, KeyTheme, "light"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, ok, err = store.Get(ctx, KeyTheme)
	if err != nil || !ok || value != "light" {
		t.Fatalf("expected overwritten value, got: %q %v %v", value, ok, err)
	}
}

func TestSQLiteMigrateDown(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "trizen-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down: %v", err)
	}
	if _, err := db.Exec(`SELECT value FROM kv WHERE key = 'x'`); err == nil {
		t.Fatal("expected kv table gone after migrate down")
	}
}
