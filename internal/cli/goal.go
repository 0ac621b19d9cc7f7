package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/rmartel/grind/internal/goals"
	"github.com/rmartel/grind/internal/stats"
)

type GoalSetCmd struct {
	Exercise string `arg:"" help:"Exercise name."`
	Daily    int    `short:"d" help:"Daily target." required:""`
	Weekly   int    `short:"w" help:"Weekly target (defaults to 7x daily)."`
}

func (c *GoalSetCmd) Validate() error {
	if c.Daily <= 0 {
		return fmt.Errorf("daily target must be positive")
	}
	if c.Weekly < 0 {
		return fmt.Errorf("weekly target must not be negative")
	}
	return nil
}

func (c *GoalSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	exercise, err := ctx.Store.GetExerciseByName(c.Exercise)
	if err != nil {
		return err
	}

	weekly := c.Weekly
	if weekly == 0 {
		weekly = c.Daily * 7
	}

	if err := ctx.Store.UpdateGoal(exercise.ID, c.Daily, weekly); err != nil {
		return err
	}
	fmt.Printf("Goal for %s: %d/day, %d/week\n", exercise.Name, c.Daily, weekly)
	return nil
}

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	all, err := ctx.Store.GetGoals()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No active goals.")
		return nil
	}

	t := newTable("Exercise", "Daily", "Weekly")
	for _, g := range all {
		unit := unitFor(g.ExerciseName)
		t.Row(g.ExerciseName,
			fmt.Sprintf("%d %s", g.DailyTarget, unit),
			fmt.Sprintf("%d %s", g.WeeklyTarget, unit))
	}
	fmt.Println(t)
	return nil
}

type GoalAdjustCmd struct {
	Exercise string `arg:"" help:"Exercise name."`
	Yes      bool   `short:"y" help:"Apply the suggestion without confirming."`
}

// Run suggests new targets from the last rolling week and applies them
// after confirmation. All input is collected before anything is written.
func (c *GoalAdjustCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	exercise, err := ctx.Store.GetExerciseByName(c.Exercise)
	if err != nil {
		return err
	}

	calc := goals.NewCalculator(ctx.Store, stats.New(ctx.Store.DB()))
	daily, weekly, err := calc.SuggestTargets(exercise.ID)
	if err != nil {
		return err
	}

	unit := unitFor(exercise.Name)
	fmt.Printf("Suggested goal for %s: %d %s/day, %d %s/week\n", exercise.Name, daily, unit, weekly, unit)

	if !c.Yes {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Apply this goal?").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("confirmation form error: %w", err)
		}
		if !confirmed {
			fmt.Println("Goal unchanged.")
			return nil
		}
	}

	if err := ctx.Store.UpdateGoal(exercise.ID, daily, weekly); err != nil {
		return err
	}
	fmt.Printf("Goal for %s updated: %s/day, %s/week\n",
		exercise.Name, strconv.Itoa(daily), strconv.Itoa(weekly))
	return nil
}
