package cli

import (
	"fmt"
	"strconv"
)

type HistoryCmd struct {
	Days int  `short:"d" help:"How many days back to show." default:"7"`
	IDs  bool `help:"Include entry IDs (for edit/delete)."`
}

func (c *HistoryCmd) Validate() error {
	if c.Days <= 0 {
		return fmt.Errorf("days must be positive")
	}
	return nil
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	workouts, err := ctx.Store.RecentWorkouts(c.Days)
	if err != nil {
		return err
	}

	if len(workouts) == 0 {
		fmt.Printf("No workouts logged in the last %d days.\n", c.Days)
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Workout history (last %d days)", c.Days)))

	headers := []string{"When", "Exercise", "Amount", "Set"}
	if c.IDs {
		headers = append([]string{"ID"}, headers...)
	}
	t := newTable(headers...)
	for _, w := range workouts {
		row := []string{
			w.Date,
			w.ExerciseName,
			fmt.Sprintf("%d %s", w.Reps, unitFor(w.ExerciseName)),
			strconv.Itoa(w.SetNumber),
		}
		if c.IDs {
			row = append([]string{strconv.Itoa(w.ID)}, row...)
		}
		t.Row(row...)
	}
	fmt.Println(t)

	total := 0
	for _, w := range workouts {
		total += w.Reps
	}
	fmt.Printf("%d sets, %d total\n", len(workouts), total)
	return nil
}
