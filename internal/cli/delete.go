package cli

import "fmt"

type DeleteCmd struct {
	ID int `arg:"" help:"Workout entry ID (see 'grind history --ids')."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.DeleteWorkout(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted entry %d\n", c.ID)
	return nil
}
