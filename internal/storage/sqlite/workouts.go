package sqlite

import (
	"fmt"
	"time"

	"github.com/rmartel/grind/internal/constants"
	"github.com/rmartel/grind/internal/models"
	"github.com/rmartel/grind/internal/storage"
)

// AddWorkout appends a logged set with the current local timestamp. The
// exercise name is not validated against the catalog.
func (s *Store) AddWorkout(exerciseName string, reps, setNumber int) error {
	now := time.Now().Format(constants.TimestampLayout)
	_, err := s.db.Exec(`
		INSERT INTO workouts (exercise_name, reps, set_number, date)
		VALUES (?, ?, ?, ?)`,
		exerciseName, reps, setNumber, now,
	)
	if err != nil {
		return fmt.Errorf("failed to add workout: %w", err)
	}
	return nil
}

// RecentWorkouts returns entries from the trailing `days` window, newest
// first. The window is anchored to local time at the moment of the call.
func (s *Store) RecentWorkouts(days int) ([]models.Workout, error) {
	cutoff := time.Now().AddDate(0, 0, -days).Format(constants.TimestampLayout)
	rows, err := s.db.Query(`
		SELECT id, date, exercise_name, reps, set_number
		FROM workouts
		WHERE date >= ?
		ORDER BY date DESC`, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.Date, &w.ExerciseName, &w.Reps, &w.SetNumber); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

func (s *Store) UpdateWorkoutReps(id, reps int) error {
	res, err := s.db.Exec("UPDATE workouts SET reps = ? WHERE id = ?", reps, id)
	if err != nil {
		return fmt.Errorf("failed to update workout: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrWorkoutNotFound
	}
	return nil
}

func (s *Store) DeleteWorkout(id int) error {
	res, err := s.db.Exec("DELETE FROM workouts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrWorkoutNotFound
	}
	return nil
}
