package cli

import "fmt"

type LogCmd struct {
	Exercise string `arg:"" help:"Exercise name as it should appear in history."`
	Reps     int    `arg:"" help:"Number of reps (or seconds for timed exercises)."`
	Set      int    `short:"s" help:"Set number within today's session." default:"1"`
}

func (c *LogCmd) Validate() error {
	if c.Reps <= 0 {
		return fmt.Errorf("reps must be positive")
	}
	if c.Set <= 0 {
		return fmt.Errorf("set number must be positive")
	}
	return nil
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.AddWorkout(c.Exercise, c.Reps, c.Set); err != nil {
		return err
	}

	fmt.Printf("Logged %d %s of %s (set %d)\n", c.Reps, unitFor(c.Exercise), c.Exercise, c.Set)
	return nil
}
