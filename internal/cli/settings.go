package cli

import (
	"fmt"
	"path/filepath"

	"github.com/rmartel/grind/internal/settings"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	store := settings.NewStore(filepath.Dir(ctx.Store.ConfigPath()))
	current := store.Load()

	t := newTable("Setting", "Value")
	t.Row("timer_sound", current.TimerSound)
	fmt.Println(t)
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting key (timer_sound)."`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	store := settings.NewStore(filepath.Dir(ctx.Store.ConfigPath()))
	current := store.Load()

	switch c.Key {
	case "timer_sound":
		current.TimerSound = c.Value
	default:
		return fmt.Errorf("unknown setting: %s", c.Key)
	}

	if err := store.Save(current); err != nil {
		return err
	}
	fmt.Printf("Set %s = %s\n", c.Key, c.Value)
	return nil
}
