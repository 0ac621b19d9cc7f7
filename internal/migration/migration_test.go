package migration

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func migrationFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func TestCurrentVersionFresh(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(nil))

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0 on fresh database, got %d", version)
	}
}

func TestApplyFromScratch(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_init.sql":  "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT);",
		"002_posts.sql": "CREATE TABLE posts (id INTEGER PRIMARY KEY, user_id INTEGER);",
	}))

	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 migrations applied, got %d", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}

	for _, table := range []string{"users", "posts"} {
		var count int
		err := db.QueryRow(
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&count)
		if err != nil || count != 1 {
			t.Errorf("expected table %s to exist", table)
		}
	}
}

func TestApplyIsIncremental(t *testing.T) {
	db := setupTestDB(t)

	first := NewRunner(db, migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE users (id INTEGER PRIMARY KEY);",
	}))
	if _, err := first.Apply(nil); err != nil {
		t.Fatalf("first Apply failed: %v", err)
	}

	second := NewRunner(db, migrationFS(map[string]string{
		"001_init.sql":  "CREATE TABLE users (id INTEGER PRIMARY KEY);",
		"002_posts.sql": "CREATE TABLE posts (id INTEGER PRIMARY KEY);",
	}))
	applied, err := second.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if applied != 1 {
		t.Errorf("expected only the new migration to apply, got %d", applied)
	}

	version, err := second.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}
}

func TestApplyNoOpWhenUpToDate(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE users (id INTEGER PRIMARY KEY);",
	}))

	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("first Apply failed: %v", err)
	}

	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected no-op on second run, got %d applied", applied)
	}
}

func TestApplyRollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_init.sql": `
			CREATE TABLE users (id INTEGER PRIMARY KEY);
			THIS IS INVALID SQL;
		`,
	}))

	if _, err := runner.Apply(nil); err == nil {
		t.Fatal("Apply should have failed with invalid SQL")
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0 after rollback, got %d", version)
	}

	var count int
	if err := db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='users'",
	).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if count != 0 {
		t.Error("table should not exist after failed migration")
	}
}

func TestLatestVersionUnordered(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_init.sql":   "CREATE TABLE users (id INTEGER);",
		"003_posts.sql":  "CREATE TABLE posts (id INTEGER);",
		"002_update.sql": "ALTER TABLE users ADD COLUMN name TEXT;",
	}))

	latest, err := runner.LatestVersion()
	if err != nil {
		t.Fatalf("LatestVersion failed: %v", err)
	}
	if latest != 3 {
		t.Errorf("expected latest version 3, got %d", latest)
	}
}

func TestValidateVersionNewerDatabase(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE users (id INTEGER PRIMARY KEY);",
	}))

	if err := runner.ensureVersionTable(); err != nil {
		t.Fatalf("failed to ensure version table: %v", err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (10)"); err != nil {
		t.Fatalf("failed to set version: %v", err)
	}

	if err := runner.ValidateVersion(); err == nil {
		t.Error("ValidateVersion should fail when the database is newer")
	}
	if _, err := runner.Apply(nil); err == nil {
		t.Error("Apply should fail when the database is newer")
	}
}

func TestInvalidFilenames(t *testing.T) {
	db := setupTestDB(t)

	t.Run("missing underscore", func(t *testing.T) {
		runner := NewRunner(db, migrationFS(map[string]string{
			"001init.sql": "CREATE TABLE users (id INTEGER);",
		}))
		if _, err := runner.Apply(nil); err == nil {
			t.Error("expected error for filename without underscore")
		}
	})

	t.Run("version zero", func(t *testing.T) {
		runner := NewRunner(db, migrationFS(map[string]string{
			"000_init.sql": "CREATE TABLE users (id INTEGER);",
		}))
		_, err := runner.Apply(nil)
		if err == nil || !strings.Contains(err.Error(), "invalid version number") {
			t.Errorf("expected version validation error, got %v", err)
		}
	})

	t.Run("duplicate version", func(t *testing.T) {
		runner := NewRunner(db, migrationFS(map[string]string{
			"001_init.sql":  "CREATE TABLE users (id INTEGER);",
			"001_other.sql": "CREATE TABLE posts (id INTEGER);",
		}))
		_, err := runner.Apply(nil)
		if err == nil || !strings.Contains(err.Error(), "duplicate migration version") {
			t.Errorf("expected duplicate version error, got %v", err)
		}
	})
}
