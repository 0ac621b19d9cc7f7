// Package stats computes time-windowed aggregates over the workout event
// log. Every query captures "now" exactly once in local wall-clock time and
// derives all window boundaries from that snapshot, so a single result is
// internally consistent even when the computation straddles midnight.
//
// Workouts are matched by their stored exercise name, not by catalog id.
// This is the one place (together with the goal progress calculator) where
// the name-based join lives; renaming a catalog exercise silently detaches
// its history.
package stats

import (
	"database/sql"
	"time"

	"github.com/rmartel/grind/internal/constants"
)

// Delta compares an aggregate across two adjacent windows. When the
// previous window is empty, Pct is 100 for any current activity and 0
// otherwise; this avoids a divide by zero and is a deliberate convention.
type Delta struct {
	Current  int     `json:"current"`
	Previous int     `json:"previous"`
	Diff     int     `json:"diff"`
	Pct      float64 `json:"pct"`
}

// DayTotal is one day of a daily series ("2006-01-02" local date).
type DayTotal struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
}

// MonthTotal is one calendar month of a monthly series ("2006-01").
type MonthTotal struct {
	Month string `json:"month"`
	Total int    `json:"total"`
}

// ExerciseTotal is a lifetime rep sum grouped by stored exercise name.
type ExerciseTotal struct {
	ExerciseName string `json:"exercise_name"`
	TotalReps    int    `json:"total_reps"`
}

// ExerciseWeekStat is a rolling-week rep sum and set count for one name.
type ExerciseWeekStat struct {
	ExerciseName string `json:"name"`
	TotalReps    int    `json:"total_reps"`
	Sets         int    `json:"sets"`
}

// Overview pairs the rolling-week and calendar-month comparisons.
type Overview struct {
	Week  Delta `json:"week"`
	Month Delta `json:"month"`
}

// Summary is the headline statistics screen.
type Summary struct {
	TodayReps   int                `json:"today_reps"`
	WeekReps    int                `json:"week_reps"`
	TotalDays   int                `json:"total_days"`
	FirstDay    string             `json:"first_day"`
	TopThisWeek []ExerciseWeekStat `json:"top_exercises"`
	PerExercise []ExerciseTotal    `json:"total_reps_per_exercise"`
}

// Analyzer is a pure read-side derivation over the workouts table; it
// never mutates state.
type Analyzer struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Analyzer {
	return &Analyzer{db: db, now: time.Now}
}

// NewWithClock constructs an Analyzer with an injected clock. Tests use
// this to pin the query-time snapshot.
func NewWithClock(db *sql.DB, now func() time.Time) *Analyzer {
	return &Analyzer{db: db, now: now}
}

// TotalToday sums reps for sets logged since the start of local today.
func (a *Analyzer) TotalToday() (int, error) {
	return a.totalToday(a.now())
}

func (a *Analyzer) totalToday(now time.Time) (int, error) {
	// The date-only string sorts before any timestamp of the same day, so
	// a plain >= comparison selects exactly today's rows.
	return a.sumWhere("date >= ?", now.Format(constants.DateLayout))
}

// TotalThisWeek sums reps over the trailing 7 days, a rolling window
// anchored to the query time, not a calendar week.
func (a *Analyzer) TotalThisWeek() (int, error) {
	return a.totalThisWeek(a.now())
}

func (a *Analyzer) totalThisWeek(now time.Time) (int, error) {
	cutoff := now.AddDate(0, 0, -7).Format(constants.TimestampLayout)
	return a.sumWhere("date >= ?", cutoff)
}

// TotalTodayFor and TotalThisWeekFor scope the window sums to one stored
// exercise name; the goal progress calculator joins through these.
func (a *Analyzer) TotalTodayFor(exerciseName string) (int, error) {
	now := a.now()
	return a.sumWhere("exercise_name = ? AND date >= ?", exerciseName, now.Format(constants.DateLayout))
}

func (a *Analyzer) TotalThisWeekFor(exerciseName string) (int, error) {
	now := a.now()
	cutoff := now.AddDate(0, 0, -7).Format(constants.TimestampLayout)
	return a.sumWhere("exercise_name = ? AND date >= ?", exerciseName, cutoff)
}

// WeekOverWeek compares two adjacent rolling 7-day spans by calendar date:
// today and the 6 days before it, against the 7 days preceding those.
func (a *Analyzer) WeekOverWeek() (Delta, error) {
	now := a.now()

	thisStart := now.AddDate(0, 0, -6).Format(constants.DateLayout)
	current, err := a.sumWhere("DATE(date) >= ?", thisStart)
	if err != nil {
		return Delta{}, err
	}

	lastStart := now.AddDate(0, 0, -13).Format(constants.DateLayout)
	lastEnd := now.AddDate(0, 0, -7).Format(constants.DateLayout)
	previous, err := a.sumWhere("DATE(date) BETWEEN ? AND ?", lastStart, lastEnd)
	if err != nil {
		return Delta{}, err
	}

	return makeDelta(current, previous), nil
}

// MonthOverMonth compares calendar year-month sums: the current month
// against the month containing the day before the 1st of the current month.
func (a *Analyzer) MonthOverMonth() (Delta, error) {
	now := a.now()

	thisMonth := now.Format(constants.MonthLayout)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonth := firstOfMonth.AddDate(0, 0, -1).Format(constants.MonthLayout)

	current, err := a.sumWhere("strftime('%Y-%m', date) = ?", thisMonth)
	if err != nil {
		return Delta{}, err
	}
	previous, err := a.sumWhere("strftime('%Y-%m', date) = ?", lastMonth)
	if err != nil {
		return Delta{}, err
	}

	return makeDelta(current, previous), nil
}

// ProgressOverview bundles both comparisons from a single time snapshot.
func (a *Analyzer) ProgressOverview() (Overview, error) {
	week, err := a.WeekOverWeek()
	if err != nil {
		return Overview{}, err
	}
	month, err := a.MonthOverMonth()
	if err != nil {
		return Overview{}, err
	}
	return Overview{Week: week, Month: month}, nil
}

// DailySeries returns exactly `days` consecutive local calendar dates
// ending today, ascending, with zero totals for days without logged sets.
func (a *Analyzer) DailySeries(days int) ([]DayTotal, error) {
	now := a.now()
	start := now.AddDate(0, 0, -(days - 1)).Format(constants.DateLayout)

	rows, err := a.db.Query(`
		SELECT DATE(date), COALESCE(SUM(reps), 0)
		FROM workouts
		WHERE DATE(date) >= ?
		GROUP BY DATE(date)`, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var day string
		var total int
		if err := rows.Scan(&day, &total); err != nil {
			return nil, err
		}
		totals[day] = total
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	series := make([]DayTotal, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(constants.DateLayout)
		series = append(series, DayTotal{Date: day, Total: totals[day]})
	}
	return series, nil
}

// MonthlySeries returns per-calendar-month sums for up to maxMonths recent
// months with any activity, most recent first.
func (a *Analyzer) MonthlySeries(maxMonths int) ([]MonthTotal, error) {
	now := a.now()
	cutoff := now.AddDate(0, -maxMonths, 0).Format(constants.TimestampLayout)

	rows, err := a.db.Query(`
		SELECT strftime('%Y-%m', date) AS month, COALESCE(SUM(reps), 0)
		FROM workouts
		WHERE date >= ?
		GROUP BY strftime('%Y-%m', date)
		ORDER BY month DESC
		LIMIT ?`, cutoff, maxMonths)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var series []MonthTotal
	for rows.Next() {
		var m MonthTotal
		if err := rows.Scan(&m.Month, &m.Total); err != nil {
			return nil, err
		}
		series = append(series, m)
	}
	return series, rows.Err()
}

// PerExerciseTotals sums reps grouped by stored exercise name, descending
// by total. Names are taken as logged: a name with no catalog entry still
// appears, and two catalog entries sharing a logged name are conflated.
func (a *Analyzer) PerExerciseTotals() ([]ExerciseTotal, error) {
	rows, err := a.db.Query(`
		SELECT exercise_name, SUM(reps) AS total_reps
		FROM workouts
		GROUP BY exercise_name
		ORDER BY total_reps DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []ExerciseTotal
	for rows.Next() {
		var t ExerciseTotal
		if err := rows.Scan(&t.ExerciseName, &t.TotalReps); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// TopExercisesThisWeek groups the rolling 7-day window by exercise name,
// descending by total reps, limited to `limit` entries.
func (a *Analyzer) TopExercisesThisWeek(limit int) ([]ExerciseWeekStat, error) {
	return a.topExercisesThisWeek(a.now(), limit)
}

func (a *Analyzer) topExercisesThisWeek(now time.Time, limit int) ([]ExerciseWeekStat, error) {
	cutoff := now.AddDate(0, 0, -7).Format(constants.TimestampLayout)
	rows, err := a.db.Query(`
		SELECT exercise_name, SUM(reps) AS total_reps, COUNT(*) AS sets
		FROM workouts
		WHERE date >= ?
		GROUP BY exercise_name
		ORDER BY total_reps DESC
		LIMIT ?`, cutoff, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var top []ExerciseWeekStat
	for rows.Next() {
		var s ExerciseWeekStat
		if err := rows.Scan(&s.ExerciseName, &s.TotalReps, &s.Sets); err != nil {
			return nil, err
		}
		top = append(top, s)
	}
	return top, rows.Err()
}

// Summary builds the headline statistics from a single time snapshot.
func (a *Analyzer) Summary() (Summary, error) {
	now := a.now()

	today, err := a.totalToday(now)
	if err != nil {
		return Summary{}, err
	}
	week, err := a.totalThisWeek(now)
	if err != nil {
		return Summary{}, err
	}

	var totalDays int
	if err := a.db.QueryRow(
		"SELECT COUNT(DISTINCT DATE(date)) FROM workouts",
	).Scan(&totalDays); err != nil {
		return Summary{}, err
	}

	var firstDay sql.NullString
	if err := a.db.QueryRow("SELECT MIN(date) FROM workouts").Scan(&firstDay); err != nil {
		return Summary{}, err
	}

	top, err := a.topExercisesThisWeek(now, constants.DefaultTopExercises)
	if err != nil {
		return Summary{}, err
	}
	perExercise, err := a.PerExerciseTotals()
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		TodayReps:   today,
		WeekReps:    week,
		TotalDays:   totalDays,
		FirstDay:    firstDay.String,
		TopThisWeek: top,
		PerExercise: perExercise,
	}, nil
}

func (a *Analyzer) sumWhere(where string, args ...any) (int, error) {
	var total int
	err := a.db.QueryRow(
		"SELECT COALESCE(SUM(reps), 0) FROM workouts WHERE "+where, args...,
	).Scan(&total)
	return total, err
}

func makeDelta(current, previous int) Delta {
	d := Delta{
		Current:  current,
		Previous: previous,
		Diff:     current - previous,
	}
	switch {
	case previous > 0:
		d.Pct = float64(d.Diff) / float64(previous) * 100
	case current > 0:
		d.Pct = 100
	}
	return d
}
