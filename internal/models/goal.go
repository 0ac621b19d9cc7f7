package models

// Goal is a daily/weekly rep target for one exercise. A target of 0 means
// "no target". Only active goals participate in progress computation.
type Goal struct {
	ID           int    `json:"id"`
	ExerciseID   int    `json:"exercise_id"`
	ExerciseName string `json:"exercise_name"`
	DailyTarget  int    `json:"daily_target"`
	WeeklyTarget int    `json:"weekly_target"`
	Active       bool   `json:"is_active"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}
