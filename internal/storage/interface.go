package storage

import (
	"database/sql"
	"errors"

	"github.com/rmartel/grind/internal/models"
)

// Lookup misses and validation failures are normal result variants the CLI
// and API branch on with errors.Is; storage I/O failures are returned
// wrapped instead.
var (
	ErrDuplicateName    = errors.New("name already exists")
	ErrWorkoutNotFound  = errors.New("workout entry not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrTagNotFound      = errors.New("tag not found")
	ErrGoalNotFound     = errors.New("no goal found for this exercise")
	ErrAlreadyScheduled = errors.New("exercise already in today's schedule")
	ErrNotScheduled     = errors.New("exercise not in today's schedule")
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Event log
	AddWorkout(exerciseName string, reps, setNumber int) error
	RecentWorkouts(days int) ([]models.Workout, error)
	UpdateWorkoutReps(id, reps int) error
	DeleteWorkout(id int) error

	// Catalog
	GetExercises() ([]models.Exercise, error)
	GetExerciseByID(id int) (models.Exercise, error)
	GetExerciseByName(name string) (models.Exercise, error)
	GetExercisesByTag(tagName string) ([]models.Exercise, error)
	AddExercise(name, description string, tagNames []string) (models.Exercise, error)
	GetTags() ([]models.Tag, error)
	AddTag(name, color string) (models.Tag, error)
	UpdateTagColor(tagID int, color string) error
	SetExerciseTags(exerciseID int, tagNames []string) error

	// Goals
	GetGoals() ([]models.Goal, error)
	GetGoalByExerciseID(exerciseID int) (models.Goal, error)
	UpdateGoal(exerciseID, dailyTarget, weeklyTarget int) error

	// Today's schedule
	SetSchedule(entries []models.PlannedExercise) error
	AddToSchedule(exerciseID int, suggestedReps *int) error
	RemoveFromSchedule(exerciseID int) error
	MarkScheduleCompleted(entryID int) error
	GetSchedule() ([]models.ScheduleEntry, error)
	AvailableForSchedule() ([]models.Exercise, error)
	ClearSchedule() error
	ScheduleProgress() (models.ScheduleProgress, error)

	// Utils
	DB() *sql.DB
	ConfigPath() string
}
