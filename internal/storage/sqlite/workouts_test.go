package sqlite

import (
	"errors"
	"testing"

	"github.com/rmartel/grind/internal/storage"
)

func TestAddAndListWorkouts(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddWorkout("Pushups", 20, 1); err != nil {
		t.Fatalf("failed to add workout: %v", err)
	}
	if err := store.AddWorkout("Squats", 30, 1); err != nil {
		t.Fatalf("failed to add workout: %v", err)
	}

	workouts, err := store.RecentWorkouts(7)
	if err != nil {
		t.Fatalf("failed to list workouts: %v", err)
	}
	if len(workouts) != 2 {
		t.Fatalf("expected 2 workouts, got %d", len(workouts))
	}
	for _, w := range workouts {
		if w.ID == 0 {
			t.Error("expected workout IDs to be assigned")
		}
		if w.Date == "" {
			t.Error("expected workout timestamps to be set")
		}
	}
}

func TestAddWorkoutDoesNotValidateName(t *testing.T) {
	store := setupTestStore(t)

	// Free-form names are allowed; the log is independent of the catalog.
	if err := store.AddWorkout("Something Made Up", 5, 1); err != nil {
		t.Fatalf("expected free-form exercise name to be accepted: %v", err)
	}
}

func TestUpdateWorkoutReps(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddWorkout("Pushups", 20, 1); err != nil {
		t.Fatalf("failed to add workout: %v", err)
	}
	workouts, err := store.RecentWorkouts(1)
	if err != nil {
		t.Fatalf("failed to list workouts: %v", err)
	}

	if err := store.UpdateWorkoutReps(workouts[0].ID, 25); err != nil {
		t.Fatalf("failed to update workout: %v", err)
	}

	updated, err := store.RecentWorkouts(1)
	if err != nil {
		t.Fatalf("failed to list workouts: %v", err)
	}
	if updated[0].Reps != 25 {
		t.Errorf("expected 25 reps after update, got %d", updated[0].Reps)
	}
}

func TestUpdateWorkoutRepsNotFound(t *testing.T) {
	store := setupTestStore(t)

	err := store.UpdateWorkoutReps(9999, 10)
	if !errors.Is(err, storage.ErrWorkoutNotFound) {
		t.Errorf("expected ErrWorkoutNotFound, got %v", err)
	}
}

func TestDeleteWorkout(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddWorkout("Pushups", 20, 1); err != nil {
		t.Fatalf("failed to add workout: %v", err)
	}
	workouts, err := store.RecentWorkouts(1)
	if err != nil {
		t.Fatalf("failed to list workouts: %v", err)
	}

	if err := store.DeleteWorkout(workouts[0].ID); err != nil {
		t.Fatalf("failed to delete workout: %v", err)
	}

	remaining, err := store.RecentWorkouts(1)
	if err != nil {
		t.Fatalf("failed to list workouts: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected no workouts after delete, got %d", len(remaining))
	}

	if err := store.DeleteWorkout(workouts[0].ID); !errors.Is(err, storage.ErrWorkoutNotFound) {
		t.Errorf("expected ErrWorkoutNotFound on double delete, got %v", err)
	}
}
