package cli

import (
	"fmt"
	"strconv"
)

type ExerciseListCmd struct{}

func (c *ExerciseListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	exercises, err := ctx.Store.GetExercises()
	if err != nil {
		return err
	}
	if len(exercises) == 0 {
		fmt.Println("No exercises in the catalog.")
		return nil
	}

	t := newTable("ID", "Name", "Tags", "Description")
	for _, e := range exercises {
		names := make([]string, 0, len(e.Tags))
		for _, tag := range e.Tags {
			names = append(names, tag.Name)
		}
		t.Row(strconv.Itoa(e.ID), e.Name, joinTagNames(names), e.Description)
	}
	fmt.Println(t)
	return nil
}

type ExerciseAddCmd struct {
	Name        string   `arg:"" help:"Exercise name (must be unique)."`
	Description string   `short:"d" help:"Short description."`
	Tags        []string `short:"t" help:"Tags to attach (created if missing)."`
}

func (c *ExerciseAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	exercise, err := ctx.Store.AddExercise(c.Name, c.Description, c.Tags)
	if err != nil {
		return err
	}
	fmt.Printf("Added exercise %s (ID %d)\n", exercise.Name, exercise.ID)
	return nil
}

type ExerciseTagCmd struct {
	Exercise string   `arg:"" help:"Exercise name."`
	Tags     []string `arg:"" help:"New full tag set (replaces existing tags)."`
}

func (c *ExerciseTagCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	exercise, err := ctx.Store.GetExerciseByName(c.Exercise)
	if err != nil {
		return err
	}
	if err := ctx.Store.SetExerciseTags(exercise.ID, c.Tags); err != nil {
		return err
	}
	fmt.Printf("Tags for %s: %s\n", exercise.Name, joinTagNames(c.Tags))
	return nil
}

type ExerciseByTagCmd struct {
	Tag string `arg:"" help:"Tag name (exact match)."`
}

func (c *ExerciseByTagCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	exercises, err := ctx.Store.GetExercisesByTag(c.Tag)
	if err != nil {
		return err
	}
	if len(exercises) == 0 {
		fmt.Printf("No exercises tagged %q.\n", c.Tag)
		return nil
	}

	t := newTable("ID", "Name", "Description")
	for _, e := range exercises {
		t.Row(strconv.Itoa(e.ID), e.Name, e.Description)
	}
	fmt.Println(t)
	return nil
}
