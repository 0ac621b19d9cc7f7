package constants

// Timestamp layouts used for values persisted in the database. Workout
// timestamps are stored as local wall-clock strings so that lexicographic
// comparison matches chronological order.
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
	MonthLayout     = "2006-01"
)

// Default values applied when the user does not supply one.
const (
	DefaultTagColor      = "#3498db"
	DefaultSuggestedReps = 20
	DefaultPlankSeconds  = 30
	DefaultDailyTarget   = 10
	DefaultSeriesMonths  = 12
	DefaultTopExercises  = 5
	DefaultTimerSound    = "timer.wav"
)
