package cli

import (
	"errors"
	"fmt"

	"github.com/rmartel/grind/internal/goals"
	"github.com/rmartel/grind/internal/stats"
	"github.com/rmartel/grind/internal/storage"
)

type ProgressCmd struct {
	Exercise string `arg:"" optional:"" help:"Limit output to one exercise."`
}

func (c *ProgressCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	calc := goals.NewCalculator(ctx.Store, stats.New(ctx.Store.DB()))

	if c.Exercise != "" {
		exercise, err := ctx.Store.GetExerciseByName(c.Exercise)
		if err != nil {
			return err
		}
		p, err := calc.Progress(exercise.ID)
		if errors.Is(err, storage.ErrGoalNotFound) {
			fmt.Printf("No active goal for %s. Set one with 'grind goal set'.\n", exercise.Name)
			return nil
		}
		if err != nil {
			return err
		}
		printProgress(p)
		return nil
	}

	all, err := calc.AllProgress()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No active goals. Set one with 'grind goal set'.")
		return nil
	}
	for _, p := range all {
		printProgress(p)
	}
	return nil
}

func printProgress(p goals.Progress) {
	unit := unitFor(p.ExerciseName)
	fmt.Println(headerStyle.Render(p.ExerciseName))
	fmt.Printf("  Today %s %3.0f%%  %d/%d %s",
		progressBar(p.DailyProgress, 20), p.DailyProgress, p.TodayReps, p.DailyTarget, unit)
	if p.DailyRemaining > 0 {
		fmt.Printf("  (%d to go)", p.DailyRemaining)
	}
	fmt.Println()
	fmt.Printf("  Week  %s %3.0f%%  %d/%d %s",
		progressBar(p.WeeklyProgress, 20), p.WeeklyProgress, p.WeekReps, p.WeeklyTarget, unit)
	if p.WeeklyRemaining > 0 {
		fmt.Printf("  (%d to go)", p.WeeklyRemaining)
	}
	fmt.Println()
}
