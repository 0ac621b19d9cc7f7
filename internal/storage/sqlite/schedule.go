package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rmartel/grind/internal/constants"
	"github.com/rmartel/grind/internal/models"
	"github.com/rmartel/grind/internal/storage"
)

// SetSchedule replaces the current schedule wholesale: clear, then insert
// the given sequence with 1-based order indexes, all in one transaction so
// a crash cannot leave a partially-cleared schedule.
func (s *Store) SetSchedule(entries []models.PlannedExercise) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM todays_schedule"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO todays_schedule (exercise_id, order_index, suggested_reps)
		VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, entry := range entries {
		if _, err := stmt.Exec(entry.ExerciseID, i+1, entry.SuggestedReps); err != nil {
			return fmt.Errorf("failed to schedule exercise %d: %w", entry.ExerciseID, err)
		}
	}

	return tx.Commit()
}

// AddToSchedule appends an exercise to the current schedule. When no
// suggested target is given it falls back to the exercise's active daily
// goal target, or the default when there is no goal.
func (s *Store) AddToSchedule(exerciseID int, suggestedReps *int) error {
	reps := 0
	if suggestedReps != nil {
		reps = *suggestedReps
	} else {
		goal, err := s.GetGoalByExerciseID(exerciseID)
		switch {
		case err == nil && goal.DailyTarget > 0:
			reps = goal.DailyTarget
		case err == nil || errors.Is(err, storage.ErrGoalNotFound):
			reps = constants.DefaultSuggestedReps
		default:
			return err
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var nextOrder int
	if err := tx.QueryRow(
		"SELECT COALESCE(MAX(order_index), 0) + 1 FROM todays_schedule",
	).Scan(&nextOrder); err != nil {
		return err
	}

	if _, err := tx.Exec(
		"INSERT INTO todays_schedule (exercise_id, order_index, suggested_reps) VALUES (?, ?, ?)",
		exerciseID, nextOrder, reps,
	); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyScheduled
		}
		return fmt.Errorf("failed to add exercise to schedule: %w", err)
	}

	return tx.Commit()
}

// RemoveFromSchedule drops the entry for an exercise and renumbers the
// survivors contiguously from 1. Relative order is preserved: each entry's
// new index is the count of surviving entries with a strictly smaller
// order index, plus one.
func (s *Store) RemoveFromSchedule(exerciseID int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM todays_schedule WHERE exercise_id = ?", exerciseID)
	if err != nil {
		return fmt.Errorf("failed to remove exercise from schedule: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotScheduled
	}

	if _, err := tx.Exec(`
		UPDATE todays_schedule
		SET order_index = (
			SELECT COUNT(*) + 1
			FROM todays_schedule ts2
			WHERE ts2.order_index < todays_schedule.order_index
		)`); err != nil {
		return err
	}

	return tx.Commit()
}

// MarkScheduleCompleted sets the completion flag; idempotent, and never
// derived from logged sets.
func (s *Store) MarkScheduleCompleted(entryID int) error {
	_, err := s.db.Exec("UPDATE todays_schedule SET is_completed = 1 WHERE id = ?", entryID)
	if err != nil {
		return fmt.Errorf("failed to mark schedule entry completed: %w", err)
	}
	return nil
}

func (s *Store) GetSchedule() ([]models.ScheduleEntry, error) {
	rows, err := s.db.Query(`
		SELECT ts.id, ts.exercise_id, e.name, e.description,
		       ts.order_index, ts.suggested_reps, ts.is_completed
		FROM todays_schedule ts
		JOIN exercises e ON ts.exercise_id = e.id
		ORDER BY ts.order_index`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ScheduleEntry
	for rows.Next() {
		var entry models.ScheduleEntry
		var description sql.NullString
		var suggestedReps sql.NullInt64
		if err := rows.Scan(
			&entry.ID, &entry.ExerciseID, &entry.ExerciseName, &description,
			&entry.OrderIndex, &suggestedReps, &entry.Completed,
		); err != nil {
			return nil, err
		}
		entry.Description = description.String
		if suggestedReps.Valid {
			reps := int(suggestedReps.Int64)
			entry.SuggestedReps = &reps
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range entries {
		tags, err := s.tagsForExercise(entries[i].ExerciseID)
		if err != nil {
			return nil, err
		}
		entries[i].Tags = tags
	}
	return entries, nil
}

// AvailableForSchedule returns catalog exercises not present in the
// current schedule.
func (s *Store) AvailableForSchedule() ([]models.Exercise, error) {
	exercises, err := s.queryExercises(`
		SELECT id, name, description
		FROM exercises
		WHERE id NOT IN (SELECT exercise_id FROM todays_schedule)
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	for i := range exercises {
		tags, err := s.tagsForExercise(exercises[i].ID)
		if err != nil {
			return nil, err
		}
		exercises[i].Tags = tags
	}
	return exercises, nil
}

func (s *Store) ClearSchedule() error {
	_, err := s.db.Exec("DELETE FROM todays_schedule")
	return err
}

func (s *Store) ScheduleProgress() (models.ScheduleProgress, error) {
	var progress models.ScheduleProgress
	err := s.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN is_completed = 1 THEN 1 ELSE 0 END), 0)
		FROM todays_schedule`).Scan(&progress.Total, &progress.Completed)
	if err != nil {
		return models.ScheduleProgress{}, err
	}
	if progress.Total > 0 {
		progress.Pct = float64(progress.Completed) / float64(progress.Total) * 100
	}
	return progress, nil
}
