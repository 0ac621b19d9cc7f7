// Package backup manages timestamped copies of the workout database.
package backup

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const (
	// MaxBackups is the number of backups kept after rotation.
	MaxBackups = 14

	backupDirName    = "backups"
	backupFilePrefix = "grind-"
	backupFileSuffix = ".db"
)

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager creates, lists and restores backups of the database file. Backups
// live in a "backups" directory next to the database.
type Manager struct {
	dbPath    string
	backupDir string
}

func NewManager(dbPath string) *Manager {
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(filepath.Dir(dbPath), backupDirName),
	}
}

func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Create makes a new backup and rotates old ones past the retention limit.
func (m *Manager) Create() (string, error) {
	return m.create(false)
}

func (m *Manager) create(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.dbPath); os.IsNotExist(err) {
		return "", fmt.Errorf("database does not exist: %s", m.dbPath)
	}

	backupPath := m.freshBackupPath()
	if err := m.copyDatabase(backupPath); err != nil {
		return "", fmt.Errorf("failed to backup database: %w", err)
	}

	if !skipRotation {
		if err := m.rotate(); err != nil {
			// A failed rotation should not fail the backup itself.
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return backupPath, nil
}

// freshBackupPath picks a timestamped filename, extending precision and
// finally appending a counter until the name is unused.
func (m *Manager) freshBackupPath() string {
	timestamp := time.Now().Format("20060102-1504")
	path := filepath.Join(m.backupDir, backupFilePrefix+timestamp+backupFileSuffix)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	timestamp = time.Now().Format("20060102-150405")
	path = filepath.Join(m.backupDir, backupFilePrefix+timestamp+backupFileSuffix)
	counter := 1
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", backupFilePrefix, timestamp, counter, backupFileSuffix))
		counter++
	}
}

// copyDatabase copies via VACUUM INTO, which produces a clean consistent
// snapshot, falling back to a plain file copy when unsupported.
func (m *Manager) copyDatabase(destPath string) error {
	srcDB, err := sql.Open("sqlite", m.dbPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer srcDB.Close()

	var count int
	if err := srcDB.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := srcDB.Exec("VACUUM INTO ?", destPath); err != nil {
		return copyFile(m.dbPath, destPath)
	}
	return nil
}

// List returns available backups, newest first.
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, backupFilePrefix) || !strings.HasSuffix(name, backupFileSuffix) {
			continue
		}

		timestamp, ok := parseBackupTimestamp(name)
		if !ok {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		backups = append(backups, Info{Path: path, Timestamp: timestamp, Size: info.Size()})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func parseBackupTimestamp(name string) (time.Time, bool) {
	stamp := strings.TrimPrefix(name, backupFilePrefix)
	stamp = strings.TrimSuffix(stamp, backupFileSuffix)

	// Strip a trailing "-N" collision counter if present.
	if parts := strings.Split(stamp, "-"); len(parts) > 2 {
		last := parts[len(parts)-1]
		if len(last) < 4 && isDigits(last) {
			stamp = strings.Join(parts[:len(parts)-1], "-")
		}
	}

	if t, err := time.Parse("20060102-1504", stamp); err == nil {
		return t, true
	}
	if t, err := time.Parse("20060102-150405", stamp); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the database with the given backup, taking a safety
// backup of the current database first.
func (m *Manager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	// Validate the backup before touching the live database.
	backupDB, err := sql.Open("sqlite", backupPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open backup: %w", err)
	}
	var count int
	err = backupDB.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
	backupDB.Close()
	if err != nil {
		return fmt.Errorf("backup appears to be corrupted: %w", err)
	}

	if _, err := os.Stat(m.dbPath); err == nil {
		if _, err := m.create(true); err != nil {
			return fmt.Errorf("failed to create safety backup before restore: %w", err)
		}
	}

	if err := copyFile(backupPath, m.dbPath); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
