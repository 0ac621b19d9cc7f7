package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func createTestDB(t *testing.T, path string) {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT)"); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := db.Exec("INSERT INTO notes (body) VALUES ('hello')"); err != nil {
		t.Fatalf("failed to insert row: %v", err)
	}
}

func countNotes(t *testing.T, path string) int {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&count); err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}

func TestCreateBackup(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "grind.db")
	createTestDB(t, dbPath)

	manager := NewManager(dbPath)
	backupPath, err := manager.Create()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("expected backup file to exist: %v", err)
	}
	if countNotes(t, backupPath) != 1 {
		t.Error("expected backup to contain the source data")
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := manager.Create(); err == nil {
		t.Error("expected error backing up a missing database, got nil")
	}
}

func TestListBackupsEmpty(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "grind.db"))
	backups, err := manager.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestListBackups(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "grind.db")
	createTestDB(t, dbPath)

	manager := NewManager(dbPath)
	if _, err := manager.Create(); err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}
	if _, err := manager.Create(); err != nil {
		t.Fatalf("failed to create second backup: %v", err)
	}

	backups, err := manager.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected 2 backups, got %d", len(backups))
	}
	for _, b := range backups {
		if b.Size == 0 {
			t.Error("expected backup size to be recorded")
		}
		if b.Timestamp.IsZero() {
			t.Error("expected backup timestamp to parse")
		}
	}
}

func TestListIgnoresUnrelatedFiles(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "grind.db")
	createTestDB(t, dbPath)

	manager := NewManager(dbPath)
	if _, err := manager.Create(); err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}
	if err := os.WriteFile(filepath.Join(manager.BackupDir(), "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatalf("failed to write unrelated file: %v", err)
	}

	backups, err := manager.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("expected unrelated files to be ignored, got %d entries", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "grind.db")
	createTestDB(t, dbPath)

	manager := NewManager(dbPath)
	backupPath, err := manager.Create()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	// Mutate the live database after the backup.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec("INSERT INTO notes (body) VALUES ('extra')"); err != nil {
		t.Fatalf("failed to insert row: %v", err)
	}
	db.Close()

	if err := manager.Restore(backupPath); err != nil {
		t.Fatalf("failed to restore backup: %v", err)
	}

	if countNotes(t, dbPath) != 1 {
		t.Error("expected restore to roll the database back to one row")
	}

	// Restoring takes a safety backup of the pre-restore state first.
	backups, err := manager.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("expected a safety backup to be created, got %d backups", len(backups))
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "grind.db")
	createTestDB(t, dbPath)

	manager := NewManager(dbPath)
	if err := manager.Restore(filepath.Join(manager.BackupDir(), "grind-nope.db")); err == nil {
		t.Error("expected error restoring a missing backup, got nil")
	}
}

func TestRestoreCorruptBackup(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "grind.db")
	createTestDB(t, dbPath)

	manager := NewManager(dbPath)
	if err := os.MkdirAll(manager.BackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	corrupt := filepath.Join(manager.BackupDir(), "grind-20260101-0000.db")
	if err := os.WriteFile(corrupt, []byte("not a database"), 0600); err != nil {
		t.Fatalf("failed to write corrupt backup: %v", err)
	}

	if err := manager.Restore(corrupt); err == nil {
		t.Error("expected error restoring a corrupt backup, got nil")
	}

	// The live database must be untouched.
	if countNotes(t, dbPath) != 1 {
		t.Error("expected live database to survive a failed restore")
	}
}

func TestRotateKeepsNewest(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "grind.db")
	createTestDB(t, dbPath)

	manager := NewManager(dbPath)
	for i := 0; i < MaxBackups+3; i++ {
		if _, err := manager.Create(); err != nil {
			t.Fatalf("failed to create backup %d: %v", i, err)
		}
	}

	backups, err := manager.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("expected rotation to keep %d backups, got %d", MaxBackups, len(backups))
	}
}
