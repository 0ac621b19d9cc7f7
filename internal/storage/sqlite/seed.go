package sqlite

import (
	"database/sql"
	"fmt"
)

// Default catalog configuration applied on first run. Values are product
// configuration, not derived data.
var (
	defaultExercises = []struct {
		name        string
		description string
	}{
		{"Pushups", "Upper body strength exercise"},
		{"Squats", "Lower body strength exercise"},
		{"Lunges", "Lower body strength exercise"},
		{"Squat & Lunge", "Lower body strength exercise"},
		{"Planks", "Core strength exercise"},
		{"Dead Bugs", "Core strength exercise"},
		{"Glute Bridges", "Lower body strength exercise"},
		{"Crunches", "Core strength exercise"},
	}

	defaultTags = []struct {
		name  string
		color string
	}{
		{"Chest", "#e74c3c"},
		{"Front Delts", "#f39c12"},
		{"Triceps", "#DECE4E"},
		{"Core", "#2ecc71"},
		{"Glutes", "#1abc9c"},
		{"Quads", "#68D9CD"},
		{"Hamstrings", "#16a085"},
		{"Calves", "#27ae60"},
		{"Back", "#2980b9"},
		{"Biceps", "#8e44ad"},
	}

	defaultExerciseTags = map[string][]string{
		"Pushups":       {"Chest", "Front Delts", "Triceps"},
		"Squats":        {"Quads", "Glutes"},
		"Squat & Lunge": {"Quads", "Glutes"},
		"Planks":        {"Core"},
		"Dead Bugs":     {"Core"},
		"Glute Bridges": {"Glutes", "Hamstrings"},
		"Lunges":        {"Quads", "Glutes"},
		"Crunches":      {"Core"},
	}

	defaultGoals = map[string]struct {
		daily  int
		weekly int
	}{
		"Pushups":       {50, 300},
		"Squats":        {50, 200},
		"Squat & Lunge": {20, 140},
		"Planks":        {3, 15},
		"Dead Bugs":     {60, 180},
		"Glute Bridges": {30, 200},
		"Lunges":        {60, 140},
		"Crunches":      {50, 300},
	}
)

// seedDefaults populates the catalog and goal store on first run. Each
// section is count-guarded so re-running init never duplicates rows.
func (s *Store) seedDefaults() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exerciseCount int
	if err := tx.QueryRow("SELECT COUNT(*) FROM exercises").Scan(&exerciseCount); err != nil {
		return err
	}
	if exerciseCount == 0 {
		for _, e := range defaultExercises {
			if _, err := tx.Exec(
				"INSERT INTO exercises (name, description) VALUES (?, ?)",
				e.name, e.description,
			); err != nil {
				return fmt.Errorf("seed exercise %q: %w", e.name, err)
			}
		}
	}

	var tagCount int
	if err := tx.QueryRow("SELECT COUNT(*) FROM tags").Scan(&tagCount); err != nil {
		return err
	}
	if tagCount == 0 {
		for _, t := range defaultTags {
			if _, err := tx.Exec(
				"INSERT INTO tags (name, color) VALUES (?, ?)",
				t.name, t.color,
			); err != nil {
				return fmt.Errorf("seed tag %q: %w", t.name, err)
			}
		}
	}

	exerciseIDs, err := idsByName(tx, "exercises")
	if err != nil {
		return err
	}
	tagIDs, err := idsByName(tx, "tags")
	if err != nil {
		return err
	}

	for exerciseName, tagNames := range defaultExerciseTags {
		exerciseID, ok := exerciseIDs[exerciseName]
		if !ok {
			continue
		}
		for _, tagName := range tagNames {
			tagID, ok := tagIDs[tagName]
			if !ok {
				continue
			}
			if _, err := tx.Exec(
				"INSERT OR IGNORE INTO exercise_tags (exercise_id, tag_id) VALUES (?, ?)",
				exerciseID, tagID,
			); err != nil {
				return err
			}
		}
	}

	for exerciseName, goal := range defaultGoals {
		exerciseID, ok := exerciseIDs[exerciseName]
		if !ok {
			continue
		}
		var goalCount int
		if err := tx.QueryRow(
			"SELECT COUNT(*) FROM goals WHERE exercise_id = ?", exerciseID,
		).Scan(&goalCount); err != nil {
			return err
		}
		if goalCount == 0 {
			if _, err := tx.Exec(
				"INSERT INTO goals (exercise_id, daily_target, weekly_target) VALUES (?, ?, ?)",
				exerciseID, goal.daily, goal.weekly,
			); err != nil {
				return fmt.Errorf("seed goal for %q: %w", exerciseName, err)
			}
		}
	}

	return tx.Commit()
}

func idsByName(tx *sql.Tx, table string) (map[string]int, error) {
	rows, err := tx.Query("SELECT id, name FROM " + table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]int)
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		result[name] = id
	}
	return result, rows.Err()
}
