package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rmartel/grind/internal/models"
	"github.com/rmartel/grind/internal/storage"
)

func (s *Store) GetExercises() ([]models.Exercise, error) {
	exercises, err := s.queryExercises("SELECT id, name, description FROM exercises ORDER BY id")
	if err != nil {
		return nil, err
	}

	tagsByExercise, err := s.tagsByExercise()
	if err != nil {
		return nil, err
	}
	for i := range exercises {
		exercises[i].Tags = tagsByExercise[exercises[i].ID]
	}
	return exercises, nil
}

func (s *Store) GetExerciseByID(id int) (models.Exercise, error) {
	return s.getExercise("SELECT id, name, description FROM exercises WHERE id = ?", id)
}

func (s *Store) GetExerciseByName(name string) (models.Exercise, error) {
	return s.getExercise("SELECT id, name, description FROM exercises WHERE name = ?", name)
}

func (s *Store) getExercise(query string, arg any) (models.Exercise, error) {
	var e models.Exercise
	var description sql.NullString
	err := s.db.QueryRow(query, arg).Scan(&e.ID, &e.Name, &description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Exercise{}, storage.ErrExerciseNotFound
		}
		return models.Exercise{}, err
	}
	e.Description = description.String

	tags, err := s.tagsForExercise(e.ID)
	if err != nil {
		return models.Exercise{}, err
	}
	e.Tags = tags
	return e, nil
}

// GetExercisesByTag returns catalog entries carrying the given tag. Tag
// matching is a case-sensitive exact match on name, no normalization.
func (s *Store) GetExercisesByTag(tagName string) ([]models.Exercise, error) {
	exercises, err := s.queryExercises(`
		SELECT e.id, e.name, e.description
		FROM exercises e
		JOIN exercise_tags et ON e.id = et.exercise_id
		JOIN tags t ON et.tag_id = t.id
		WHERE t.name = ?
		ORDER BY e.id`, tagName)
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

// AddExercise creates a catalog entry and links it to each named tag,
// creating missing tags with the default color. The whole operation is one
// transaction so a failed tag link cannot leave a half-created exercise.
func (s *Store) AddExercise(name, description string, tagNames []string) (models.Exercise, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.Exercise{}, err
	}
	defer tx.Rollback()

	res, err := tx.Exec("INSERT INTO exercises (name, description) VALUES (?, ?)", name, description)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Exercise{}, storage.ErrDuplicateName
		}
		return models.Exercise{}, fmt.Errorf("failed to add exercise: %w", err)
	}
	exerciseID64, err := res.LastInsertId()
	if err != nil {
		return models.Exercise{}, err
	}
	exerciseID := int(exerciseID64)

	for _, tagName := range tagNames {
		tagID, err := getOrCreateTag(tx, tagName)
		if err != nil {
			return models.Exercise{}, err
		}
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO exercise_tags (exercise_id, tag_id) VALUES (?, ?)",
			exerciseID, tagID,
		); err != nil {
			return models.Exercise{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Exercise{}, err
	}
	return s.GetExerciseByID(exerciseID)
}

func (s *Store) GetTags() ([]models.Tag, error) {
	rows, err := s.db.Query("SELECT id, name, color FROM tags ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (s *Store) AddTag(name, color string) (models.Tag, error) {
	res, err := s.db.Exec("INSERT INTO tags (name, color) VALUES (?, ?)", name, color)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Tag{}, storage.ErrDuplicateName
		}
		return models.Tag{}, fmt.Errorf("failed to add tag: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Tag{}, err
	}
	return models.Tag{ID: int(id), Name: name, Color: color}, nil
}

func (s *Store) UpdateTagColor(tagID int, color string) error {
	res, err := s.db.Exec("UPDATE tags SET color = ? WHERE id = ?", color, tagID)
	if err != nil {
		return fmt.Errorf("failed to update tag color: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrTagNotFound
	}
	return nil
}

// SetExerciseTags replaces the exercise's tag set wholesale: all existing
// associations are deleted, then the named tags are linked, not a diff.
func (s *Store) SetExerciseTags(exerciseID int, tagNames []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var one int
	if err := tx.QueryRow("SELECT 1 FROM exercises WHERE id = ?", exerciseID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrExerciseNotFound
		}
		return err
	}

	if _, err := tx.Exec("DELETE FROM exercise_tags WHERE exercise_id = ?", exerciseID); err != nil {
		return err
	}

	for _, tagName := range tagNames {
		tagID, err := getOrCreateTag(tx, tagName)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO exercise_tags (exercise_id, tag_id) VALUES (?, ?)",
			exerciseID, tagID,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// getOrCreateTag resolves a tag id by exact name, inserting a new tag with
// the default color when no match exists. A UNIQUE violation on insert
// means another writer got there first, so the id is re-fetched.
func getOrCreateTag(tx *sql.Tx, name string) (int, error) {
	var id int
	err := tx.QueryRow("SELECT id FROM tags WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	res, err := tx.Exec("INSERT INTO tags (name) VALUES (?)", name)
	if err != nil {
		if isUniqueViolation(err) {
			if err := tx.QueryRow("SELECT id FROM tags WHERE name = ?", name).Scan(&id); err != nil {
				return 0, err
			}
			return id, nil
		}
		return 0, fmt.Errorf("failed to create tag %q: %w", name, err)
	}
	id64, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id64), nil
}

func (s *Store) queryExercises(query string, args ...any) ([]models.Exercise, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		var e models.Exercise
		var description sql.NullString
		if err := rows.Scan(&e.ID, &e.Name, &description); err != nil {
			return nil, err
		}
		e.Description = description.String
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

func (s *Store) tagsForExercise(exerciseID int) ([]models.Tag, error) {
	rows, err := s.db.Query(`
		SELECT t.id, t.name, t.color
		FROM tags t
		JOIN exercise_tags et ON t.id = et.tag_id
		WHERE et.exercise_id = ?
		ORDER BY t.id`, exerciseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (s *Store) tagsByExercise() (map[int][]models.Tag, error) {
	rows, err := s.db.Query(`
		SELECT et.exercise_id, t.id, t.name, t.color
		FROM exercise_tags et
		JOIN tags t ON et.tag_id = t.id
		ORDER BY t.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int][]models.Tag)
	for rows.Next() {
		var exerciseID int
		var t models.Tag
		if err := rows.Scan(&exerciseID, &t.ID, &t.Name, &t.Color); err != nil {
			return nil, err
		}
		result[exerciseID] = append(result[exerciseID], t)
	}
	return result, rows.Err()
}
