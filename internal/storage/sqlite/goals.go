package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rmartel/grind/internal/models"
	"github.com/rmartel/grind/internal/storage"
)

// GetGoals returns all active goals joined with their exercise names,
// ordered by exercise name.
func (s *Store) GetGoals() ([]models.Goal, error) {
	rows, err := s.db.Query(`
		SELECT g.id, g.exercise_id, e.name, g.daily_target, g.weekly_target,
		       g.is_active, g.created_at, g.updated_at
		FROM goals g
		JOIN exercises e ON g.exercise_id = e.id
		WHERE g.is_active = 1
		ORDER BY e.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		g, err := scanGoal(rows.Scan)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// GetGoalByExerciseID returns the active goal for an exercise.
// ErrGoalNotFound is a normal miss, not a failure: callers routinely branch
// on "no goal configured yet".
func (s *Store) GetGoalByExerciseID(exerciseID int) (models.Goal, error) {
	row := s.db.QueryRow(`
		SELECT g.id, g.exercise_id, e.name, g.daily_target, g.weekly_target,
		       g.is_active, g.created_at, g.updated_at
		FROM goals g
		JOIN exercises e ON g.exercise_id = e.id
		WHERE g.exercise_id = ? AND g.is_active = 1`, exerciseID)

	g, err := scanGoal(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Goal{}, storage.ErrGoalNotFound
		}
		return models.Goal{}, err
	}
	return g, nil
}

// UpdateGoal upserts the goal for an exercise: update if a row exists, else
// insert. The updated_at timestamp is refreshed on every mutation.
func (s *Store) UpdateGoal(exerciseID, dailyTarget, weeklyTarget int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE goals
		SET daily_target = ?, weekly_target = ?, updated_at = CURRENT_TIMESTAMP
		WHERE exercise_id = ?`,
		dailyTarget, weeklyTarget, exerciseID,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		if _, err := tx.Exec(
			"INSERT INTO goals (exercise_id, daily_target, weekly_target) VALUES (?, ?, ?)",
			exerciseID, dailyTarget, weeklyTarget,
		); err != nil {
			return fmt.Errorf("failed to create goal: %w", err)
		}
	}

	return tx.Commit()
}

func scanGoal(scan func(dest ...any) error) (models.Goal, error) {
	var g models.Goal
	err := scan(
		&g.ID, &g.ExerciseID, &g.ExerciseName, &g.DailyTarget, &g.WeeklyTarget,
		&g.Active, &g.CreatedAt, &g.UpdatedAt,
	)
	return g, err
}
