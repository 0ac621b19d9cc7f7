package cli

import (
	"fmt"
	"path/filepath"

	"github.com/rmartel/grind/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	manager := backup.NewManager(ctx.Store.ConfigPath())
	path, err := manager.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Backup created: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	manager := backup.NewManager(ctx.Store.ConfigPath())
	backups, err := manager.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	t := newTable("Backup", "Created", "Size")
	for _, b := range backups {
		t.Row(filepath.Base(b.Path),
			b.Timestamp.Format("2006-01-02 15:04"),
			fmt.Sprintf("%.1f KiB", float64(b.Size)/1024))
	}
	fmt.Println(t)
	return nil
}

type BackupRestoreCmd struct {
	Name string `arg:"" help:"Backup file name (see 'grind backup list')."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	manager := backup.NewManager(ctx.Store.ConfigPath())
	path := filepath.Join(manager.BackupDir(), c.Name)
	if err := manager.Restore(path); err != nil {
		return err
	}
	fmt.Printf("Restored database from %s\n", c.Name)
	fmt.Println("A safety backup of the previous state was created first.")
	return nil
}
