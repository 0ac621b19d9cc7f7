// Package goals derives goal progress and target suggestions by joining
// the goal store with windowed totals from the event log. It is read-only:
// all mutation goes through the storage layer directly.
package goals

import (
	"errors"
	"fmt"

	"github.com/rmartel/grind/internal/constants"
	"github.com/rmartel/grind/internal/models"
	"github.com/rmartel/grind/internal/storage"
)

// Progress is the attainment picture for one active goal. Percentages are
// capped at 100; the underlying totals are not.
type Progress struct {
	ExerciseID      int     `json:"exercise_id"`
	ExerciseName    string  `json:"exercise_name"`
	DailyTarget     int     `json:"daily_target"`
	WeeklyTarget    int     `json:"weekly_target"`
	TodayReps       int     `json:"today_reps"`
	WeekReps        int     `json:"week_reps"`
	DailyProgress   float64 `json:"daily_progress"`
	WeeklyProgress  float64 `json:"weekly_progress"`
	DailyRemaining  int     `json:"daily_remaining"`
	WeeklyRemaining int     `json:"weekly_remaining"`
}

type goalStore interface {
	GetGoals() ([]models.Goal, error)
	GetGoalByExerciseID(exerciseID int) (models.Goal, error)
}

type windowTotals interface {
	TotalTodayFor(exerciseName string) (int, error)
	TotalThisWeekFor(exerciseName string) (int, error)
}

type Calculator struct {
	goals  goalStore
	totals windowTotals
}

func NewCalculator(goals goalStore, totals windowTotals) *Calculator {
	return &Calculator{
		goals:  goals,
		totals: totals,
	}
}

// Progress computes attainment for the exercise's active goal. Workouts
// are matched to the goal by the exercise's name, so history logged under
// an old name no longer counts after a rename.
// storage.ErrGoalNotFound is a normal miss callers branch on.
func (c *Calculator) Progress(exerciseID int) (Progress, error) {
	goal, err := c.goals.GetGoalByExerciseID(exerciseID)
	if err != nil {
		return Progress{}, err
	}

	todayReps, err := c.totals.TotalTodayFor(goal.ExerciseName)
	if err != nil {
		return Progress{}, fmt.Errorf("today total for %q: %w", goal.ExerciseName, err)
	}
	weekReps, err := c.totals.TotalThisWeekFor(goal.ExerciseName)
	if err != nil {
		return Progress{}, fmt.Errorf("week total for %q: %w", goal.ExerciseName, err)
	}

	return Progress{
		ExerciseID:      goal.ExerciseID,
		ExerciseName:    goal.ExerciseName,
		DailyTarget:     goal.DailyTarget,
		WeeklyTarget:    goal.WeeklyTarget,
		TodayReps:       todayReps,
		WeekReps:        weekReps,
		DailyProgress:   cappedPct(todayReps, goal.DailyTarget),
		WeeklyProgress:  cappedPct(weekReps, goal.WeeklyTarget),
		DailyRemaining:  remaining(goal.DailyTarget, todayReps),
		WeeklyRemaining: remaining(goal.WeeklyTarget, weekReps),
	}, nil
}

// AllProgress computes progress for every active goal, skipping goals
// that resolve to a miss between listing and lookup.
func (c *Calculator) AllProgress() ([]Progress, error) {
	goals, err := c.goals.GetGoals()
	if err != nil {
		return nil, err
	}

	var all []Progress
	for _, goal := range goals {
		p, err := c.Progress(goal.ExerciseID)
		if err != nil {
			if errors.Is(err, storage.ErrGoalNotFound) {
				continue
			}
			return nil, err
		}
		all = append(all, p)
	}
	return all, nil
}

// SuggestTargets proposes adjusted daily/weekly targets for the goal-edit
// flow: over-achievers (≥110% of the daily target today, uncapped) get a
// 10% bump, under-achievers (≤60% with a nonzero target) a 10% cut floored
// at 1, everyone else keeps the current target. The weekly suggestion is
// always 7x the daily one; it does not analyze weekly history on its own.
func (c *Calculator) SuggestTargets(exerciseID int) (daily, weekly int, err error) {
	goal, err := c.goals.GetGoalByExerciseID(exerciseID)
	if errors.Is(err, storage.ErrGoalNotFound) {
		daily = constants.DefaultDailyTarget
		return daily, daily * 7, nil
	}
	if err != nil {
		return 0, 0, err
	}

	daily = goal.DailyTarget
	if daily == 0 {
		daily = constants.DefaultDailyTarget
	}

	todayReps, err := c.totals.TotalTodayFor(goal.ExerciseName)
	if err != nil {
		return 0, 0, err
	}

	if goal.DailyTarget > 0 {
		pct := float64(todayReps) / float64(goal.DailyTarget) * 100
		switch {
		case pct >= 110:
			daily = int(float64(max(goal.DailyTarget, 1)) * 1.1)
		case pct <= 60:
			daily = max(int(float64(goal.DailyTarget)*0.9), 1)
		default:
			daily = goal.DailyTarget
		}
	}

	weekly = max(daily*7, 1)
	return daily, weekly, nil
}

func cappedPct(total, target int) float64 {
	if target <= 0 {
		return 0
	}
	pct := float64(total) / float64(target) * 100
	return min(pct, 100)
}

func remaining(target, total int) int {
	return max(target-total, 0)
}
