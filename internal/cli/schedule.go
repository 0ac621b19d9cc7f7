package cli

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/rmartel/grind/internal/constants"
	"github.com/rmartel/grind/internal/models"
	"github.com/rmartel/grind/internal/storage"
)

type ScheduleGenerateCmd struct {
	Count int  `short:"n" help:"How many exercises to pick (0 = all)." default:"0"`
	Yes   bool `short:"y" help:"Save without confirming."`
}

func (c *ScheduleGenerateCmd) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count must not be negative")
	}
	return nil
}

// Run draws a random selection from the catalog, suggests a target per
// exercise from the active daily goal and replaces today's schedule.
func (c *ScheduleGenerateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	all, err := ctx.Store.GetExercises()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No exercises in the catalog. Add some with 'grind exercise add'.")
		return nil
	}

	count := c.Count
	if count == 0 || count > len(all) {
		count = len(all)
	}

	rand.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	picked := all[:count]

	planned := make([]models.PlannedExercise, 0, count)
	t := newTable("#", "Exercise", "Target", "Muscles")
	for i, e := range picked {
		target := suggestedTarget(ctx, e)
		planned = append(planned, models.PlannedExercise{ExerciseID: e.ID, SuggestedReps: target})

		names := make([]string, 0, len(e.Tags))
		for _, tag := range e.Tags {
			names = append(names, tag.Name)
		}
		t.Row(strconv.Itoa(i+1), e.Name,
			fmt.Sprintf("%d %s", target, unitFor(e.Name)), joinTagNames(names))
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Random workout (%d exercises)", count)))
	fmt.Println(t)

	if !c.Yes {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Save this as today's schedule?").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("confirmation form error: %w", err)
		}
		if !confirmed {
			fmt.Println("Schedule unchanged.")
			return nil
		}
	}

	if err := ctx.Store.SetSchedule(planned); err != nil {
		return err
	}
	fmt.Println("Today's workout schedule saved.")
	return nil
}

// suggestedTarget is the active daily goal target when one exists,
// otherwise a sensible default per exercise kind.
func suggestedTarget(ctx *Context, e models.Exercise) int {
	goal, err := ctx.Store.GetGoalByExerciseID(e.ID)
	if err == nil && goal.DailyTarget > 0 {
		return goal.DailyTarget
	}
	if unitFor(e.Name) == "sec" {
		return constants.DefaultPlankSeconds
	}
	return constants.DefaultSuggestedReps
}

type ScheduleShowCmd struct{}

func (c *ScheduleShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	schedule, err := ctx.Store.GetSchedule()
	if err != nil {
		return err
	}
	if len(schedule) == 0 {
		fmt.Println("No workout scheduled for today. Use 'grind schedule generate' to create one.")
		return nil
	}

	fmt.Println(headerStyle.Render("Today's workout"))
	t := newTable("#", "Exercise", "Target", "Done", "Muscles")
	for _, entry := range schedule {
		status := dimStyle.Render("·")
		if entry.Completed {
			status = goodStyle.Render("✓")
		}
		target := "-"
		if entry.SuggestedReps != nil {
			target = fmt.Sprintf("%d %s", *entry.SuggestedReps, unitFor(entry.ExerciseName))
		}
		names := make([]string, 0, len(entry.Tags))
		for _, tag := range entry.Tags {
			names = append(names, tag.Name)
		}
		t.Row(strconv.Itoa(entry.OrderIndex), entry.ExerciseName, target, status, joinTagNames(names))
	}
	fmt.Println(t)

	progress, err := ctx.Store.ScheduleProgress()
	if err != nil {
		return err
	}
	fmt.Printf("Completed %d/%d  %s %.0f%%\n",
		progress.Completed, progress.Total, progressBar(progress.Pct, 20), progress.Pct)
	return nil
}

type ScheduleAddCmd struct {
	Exercise string `arg:"" help:"Exercise name."`
	Reps     *int   `short:"r" help:"Suggested target (defaults to the daily goal)."`
}

func (c *ScheduleAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	exercise, err := ctx.Store.GetExerciseByName(c.Exercise)
	if err != nil {
		return err
	}

	if err := ctx.Store.AddToSchedule(exercise.ID, c.Reps); err != nil {
		if errors.Is(err, storage.ErrAlreadyScheduled) {
			fmt.Printf("%s is already in today's schedule.\n", exercise.Name)
			return nil
		}
		return err
	}
	fmt.Printf("Added %s to today's schedule.\n", exercise.Name)
	return nil
}

type ScheduleRemoveCmd struct {
	Exercise string `arg:"" help:"Exercise name."`
}

func (c *ScheduleRemoveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	exercise, err := ctx.Store.GetExerciseByName(c.Exercise)
	if err != nil {
		return err
	}

	if err := ctx.Store.RemoveFromSchedule(exercise.ID); err != nil {
		return err
	}
	fmt.Printf("Removed %s from today's schedule.\n", exercise.Name)
	return nil
}

type ScheduleDoneCmd struct {
	Exercise string `arg:"" help:"Exercise name."`
}

func (c *ScheduleDoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	schedule, err := ctx.Store.GetSchedule()
	if err != nil {
		return err
	}
	for _, entry := range schedule {
		if entry.ExerciseName == c.Exercise {
			if err := ctx.Store.MarkScheduleCompleted(entry.ID); err != nil {
				return err
			}
			fmt.Printf("Marked %s as done.\n", entry.ExerciseName)
			return nil
		}
	}
	return storage.ErrNotScheduled
}

type ScheduleClearCmd struct{}

func (c *ScheduleClearCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.ClearSchedule(); err != nil {
		return err
	}
	fmt.Println("Cleared today's schedule.")
	return nil
}
