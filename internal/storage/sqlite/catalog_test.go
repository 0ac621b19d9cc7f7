package sqlite

import (
	"errors"
	"testing"

	"github.com/rmartel/grind/internal/storage"
)

func TestAddExercise(t *testing.T) {
	store := setupTestStore(t)

	added, err := store.AddExercise("Burpees", "Full body", []string{"Core", "Cardio"})
	if err != nil {
		t.Fatalf("failed to add exercise: %v", err)
	}
	if added.ID == 0 {
		t.Error("expected positive exercise ID")
	}

	got, err := store.GetExerciseByName("Burpees")
	if err != nil {
		t.Fatalf("failed to fetch added exercise: %v", err)
	}
	if got.Description != "Full body" {
		t.Errorf("expected description to round-trip, got %q", got.Description)
	}
	if len(got.Tags) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(got.Tags))
	}

	// "Core" existed from seeding, "Cardio" was created on the fly with the
	// default color.
	tagsByName := map[string]string{}
	for _, tag := range got.Tags {
		tagsByName[tag.Name] = tag.Color
	}
	if tagsByName["Core"] != "#2ecc71" {
		t.Errorf("expected seeded Core tag to be reused, got color %q", tagsByName["Core"])
	}
	if tagsByName["Cardio"] != "#3498db" {
		t.Errorf("expected new tag with default color, got %q", tagsByName["Cardio"])
	}
}

func TestAddExerciseDuplicateName(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.AddExercise("Pushups", "dupe", nil)
	if !errors.Is(err, storage.ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
}

func TestGetExerciseByNameNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetExerciseByName("Nonexistent")
	if !errors.Is(err, storage.ErrExerciseNotFound) {
		t.Errorf("expected ErrExerciseNotFound, got %v", err)
	}
}

func TestGetExercisesByTag(t *testing.T) {
	store := setupTestStore(t)

	core, err := store.GetExercisesByTag("Core")
	if err != nil {
		t.Fatalf("failed to query by tag: %v", err)
	}
	if len(core) == 0 {
		t.Error("expected seeded exercises tagged Core")
	}

	// Tag match is exact and case-sensitive.
	lower, err := store.GetExercisesByTag("core")
	if err != nil {
		t.Fatalf("failed to query by tag: %v", err)
	}
	if len(lower) != 0 {
		t.Errorf("expected no matches for lowercased tag, got %d", len(lower))
	}
}

func TestSetExerciseTagsReplaces(t *testing.T) {
	store := setupTestStore(t)

	pushups, err := store.GetExerciseByName("Pushups")
	if err != nil {
		t.Fatalf("failed to get Pushups: %v", err)
	}

	if err := store.SetExerciseTags(pushups.ID, []string{"Back"}); err != nil {
		t.Fatalf("failed to set tags: %v", err)
	}

	got, err := store.GetExerciseByName("Pushups")
	if err != nil {
		t.Fatalf("failed to refetch Pushups: %v", err)
	}
	if len(got.Tags) != 1 || got.Tags[0].Name != "Back" {
		t.Errorf("expected tag set to be fully replaced with [Back], got %v", got.Tags)
	}
}

func TestSetExerciseTagsUnknownExercise(t *testing.T) {
	store := setupTestStore(t)

	err := store.SetExerciseTags(9999, []string{"Core"})
	if !errors.Is(err, storage.ErrExerciseNotFound) {
		t.Errorf("expected ErrExerciseNotFound, got %v", err)
	}
}

func TestAddTag(t *testing.T) {
	store := setupTestStore(t)

	tag, err := store.AddTag("Cardio", "#ff0000")
	if err != nil {
		t.Fatalf("failed to add tag: %v", err)
	}
	if tag.ID == 0 {
		t.Error("expected positive tag ID")
	}

	_, err = store.AddTag("Cardio", "#00ff00")
	if !errors.Is(err, storage.ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName on duplicate tag, got %v", err)
	}
}

func TestUpdateTagColor(t *testing.T) {
	store := setupTestStore(t)

	tag, err := store.AddTag("Cardio", "#ff0000")
	if err != nil {
		t.Fatalf("failed to add tag: %v", err)
	}

	if err := store.UpdateTagColor(tag.ID, "#123456"); err != nil {
		t.Fatalf("failed to update color: %v", err)
	}

	tags, err := store.GetTags()
	if err != nil {
		t.Fatalf("failed to list tags: %v", err)
	}
	found := false
	for _, got := range tags {
		if got.ID == tag.ID {
			found = true
			if got.Color != "#123456" {
				t.Errorf("expected updated color, got %q", got.Color)
			}
		}
	}
	if !found {
		t.Error("updated tag missing from list")
	}

	if err := store.UpdateTagColor(9999, "#123456"); !errors.Is(err, storage.ErrTagNotFound) {
		t.Errorf("expected ErrTagNotFound, got %v", err)
	}
}
