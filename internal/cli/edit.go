package cli

import "fmt"

type EditCmd struct {
	ID   int `arg:"" help:"Workout entry ID (see 'grind history --ids')."`
	Reps int `arg:"" help:"Corrected rep count."`
}

func (c *EditCmd) Validate() error {
	if c.Reps <= 0 {
		return fmt.Errorf("reps must be positive")
	}
	return nil
}

func (c *EditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.UpdateWorkoutReps(c.ID, c.Reps); err != nil {
		return err
	}
	fmt.Printf("Updated entry %d to %d reps\n", c.ID, c.Reps)
	return nil
}
