package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testFS(files map[string]string) fstest.MapFS {
	fs := fstest.MapFS{}
	for name, sql := range files {
		fs[name] = &fstest.MapFile{Data: []byte(sql)}
	}
	return fs
}

func TestApplyFreshDatabase(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS(map[string]string{
		"001_init.sql": "CREATE TABLE notes (id INTEGER PRIMARY KEY);",
		"002_tags.sql": "CREATE TABLE tags (id INTEGER PRIMARY KEY);",
	}))

	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 applied migrations, got %d", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("failed to get version: %v", err)
	}
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}

	for _, table := range []string{"notes", "tags"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s should exist: %v", table, err)
		}
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS(map[string]string{
		"001_init.sql": "CREATE TABLE notes (id INTEGER PRIMARY KEY);",
	}))

	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("second apply should do nothing, applied %d", applied)
	}
}

func TestApplyOnlyPending(t *testing.T) {
	db := openTestDB(t)

	first := NewRunner(db, testFS(map[string]string{
		"001_init.sql": "CREATE TABLE notes (id INTEGER PRIMARY KEY);",
	}))
	if _, err := first.Apply(nil); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	second := NewRunner(db, testFS(map[string]string{
		"001_init.sql": "CREATE TABLE notes (id INTEGER PRIMARY KEY);",
		"002_tags.sql": "CREATE TABLE tags (id INTEGER PRIMARY KEY);",
	}))
	applied, err := second.Apply(nil)
	if err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
	if applied != 1 {
		t.Errorf("expected only the pending migration to run, applied %d", applied)
	}
}

func TestApplyRollsBackFailedMigration(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS(map[string]string{
		"001_bad.sql": "CREATE TABLE broken (; this is not sql",
	}))

	if _, err := runner.Apply(nil); err == nil {
		t.Fatal("expected an error for invalid SQL")
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("failed to get version: %v", err)
	}
	if version != 0 {
		t.Errorf("failed migration must not bump the version, got %d", version)
	}
}

func TestReadMigrationFilesRejectsBadNames(t *testing.T) {
	db := openTestDB(t)

	cases := map[string]map[string]string{
		"missing underscore": {"001.sql": "SELECT 1;"},
		"non-numeric":        {"abc_init.sql": "SELECT 1;"},
		"zero version":       {"000_init.sql": "SELECT 1;"},
		"duplicate version": {
			"001_a.sql": "SELECT 1;",
			"001_b.sql": "SELECT 1;",
		},
	}
	for name, files := range cases {
		runner := NewRunner(db, testFS(files))
		if _, err := runner.ReadMigrationFiles(); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestReadMigrationFilesSorted(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS(map[string]string{
		"010_later.sql":  "SELECT 1;",
		"002_middle.sql": "SELECT 1;",
		"001_first.sql":  "SELECT 1;",
	}))

	migrations, err := runner.ReadMigrationFiles()
	if err != nil {
		t.Fatalf("failed to read migrations: %v", err)
	}
	want := []int{1, 2, 10}
	if len(migrations) != len(want) {
		t.Fatalf("expected %d migrations, got %d", len(want), len(migrations))
	}
	for i, m := range migrations {
		if m.Version != want[i] {
			t.Errorf("migration %d version = %d, want %d", i, m.Version, want[i])
		}
	}
}

func TestValidateVersionRejectsNewerSchema(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS(map[string]string{
		"001_init.sql": "CREATE TABLE notes (id INTEGER PRIMARY KEY);",
		"002_tags.sql": "CREATE TABLE tags (id INTEGER PRIMARY KEY);",
	}))
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	// An older application knows only migration 001.
	older := NewRunner(db, testFS(map[string]string{
		"001_init.sql": "CREATE TABLE notes (id INTEGER PRIMARY KEY);",
	}))
	if err := older.ValidateVersion(); err == nil {
		t.Error("expected an error for a database written by a newer application")
	}
}
