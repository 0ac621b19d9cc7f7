package models

// ScheduleEntry is one exercise planned for the current day. The completion
// flag is set only by an explicit "done" command; it is never derived from
// logged sets, so it can diverge from actual logged totals.
type ScheduleEntry struct {
	ID            int    `json:"id"`
	ExerciseID    int    `json:"exercise_id"`
	ExerciseName  string `json:"exercise_name"`
	Description   string `json:"description"`
	OrderIndex    int    `json:"order_index"`
	SuggestedReps *int   `json:"suggested_reps"`
	Completed     bool   `json:"is_completed"`
	Tags          []Tag  `json:"tags"`
}

// PlannedExercise is one item of a schedule replacement: the exercise and
// its suggested rep (or seconds) target.
type PlannedExercise struct {
	ExerciseID    int
	SuggestedReps int
}

// ScheduleProgress summarizes completion of the current schedule.
type ScheduleProgress struct {
	Total     int     `json:"total_exercises"`
	Completed int     `json:"completed_exercises"`
	Pct       float64 `json:"completion_percentage"`
}
