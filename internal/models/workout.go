package models

// Workout is one logged set of an exercise. The exercise name is stored as
// free text and is not validated against the catalog, so history can refer
// to exercises that were renamed or never existed.
type Workout struct {
	ID           int    `json:"id"`
	Date         string `json:"date"` // local wall-clock, "2006-01-02 15:04:05"
	ExerciseName string `json:"exercise_name"`
	Reps         int    `json:"reps"` // seconds for time-based exercises
	SetNumber    int    `json:"set_number"`
}
