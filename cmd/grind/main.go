package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/rmartel/grind/internal/cli"
	"github.com/rmartel/grind/internal/errors"
	"github.com/rmartel/grind/internal/logger"
	"github.com/rmartel/grind/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"path" default:"~/.config/grind/grind.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize grind storage and seed the default catalog."`
	Log      cli.LogCmd      `cmd:"" help:"Log a set."`
	History  cli.HistoryCmd  `cmd:"" help:"Show recent workout history."`
	Edit     cli.EditCmd     `cmd:"" help:"Correct the rep count of a logged set."`
	Delete   cli.DeleteCmd   `cmd:"" help:"Delete a logged set."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show workout statistics and trends."`
	Progress cli.ProgressCmd `cmd:"" help:"Show goal progress."`
	Goal     struct {
		Set    cli.GoalSetCmd    `cmd:"" help:"Set daily and weekly targets for an exercise."`
		List   cli.GoalListCmd   `cmd:"" help:"List active goals."`
		Adjust cli.GoalAdjustCmd `cmd:"" help:"Suggest and apply adjusted targets."`
	} `cmd:"" help:"Manage goals."`
	Exercise struct {
		List  cli.ExerciseListCmd  `cmd:"" help:"List the exercise catalog."`
		Add   cli.ExerciseAddCmd   `cmd:"" help:"Add an exercise to the catalog."`
		Tag   cli.ExerciseTagCmd   `cmd:"" help:"Replace an exercise's tags."`
		ByTag cli.ExerciseByTagCmd `cmd:"" name:"by-tag" help:"List exercises with a given tag."`
	} `cmd:"" help:"Manage the exercise catalog."`
	Tag struct {
		List  cli.TagListCmd  `cmd:"" help:"List tags."`
		Add   cli.TagAddCmd   `cmd:"" help:"Add a tag."`
		Color cli.TagColorCmd `cmd:"" help:"Change a tag's color."`
	} `cmd:"" help:"Manage tags."`
	Schedule struct {
		Generate cli.ScheduleGenerateCmd `cmd:"" help:"Generate a random workout for today."`
		Show     cli.ScheduleShowCmd     `cmd:"" help:"Show today's schedule and progress."`
		Add      cli.ScheduleAddCmd      `cmd:"" help:"Add an exercise to today's schedule."`
		Remove   cli.ScheduleRemoveCmd   `cmd:"" help:"Remove an exercise from today's schedule."`
		Done     cli.ScheduleDoneCmd     `cmd:"" help:"Mark a scheduled exercise as completed."`
		Clear    cli.ScheduleClearCmd    `cmd:"" help:"Clear today's schedule."`
	} `cmd:"" help:"Manage today's workout schedule."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a database backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the database from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Serve    cli.ServeCmd `cmd:"" help:"Serve the exercise catalog over HTTP."`
	Settings struct {
		Show cli.SettingsShowCmd `cmd:"" help:"Show settings."`
		Set  cli.SettingsSetCmd  `cmd:"" help:"Change a setting."`
	} `cmd:"" help:"Manage settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("grind"),
		kong.Description("Exercise tracker / daily workout companion"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{
		Store: sqlite.NewStore(CLI.Config),
	}

	if err := ctx.Run(appCtx); err != nil {
		appCtx.Store.Close()
		errors.Fatal(err)
	}
	appCtx.Store.Close()
}
