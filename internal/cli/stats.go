package cli

import (
	"fmt"
	"strconv"

	"github.com/rmartel/grind/internal/constants"
	"github.com/rmartel/grind/internal/stats"
)

type StatsCmd struct {
	Days   int  `short:"d" help:"Days in the daily breakdown." default:"7"`
	Months bool `short:"m" help:"Include the monthly series."`
}

func (c *StatsCmd) Validate() error {
	if c.Days <= 0 {
		return fmt.Errorf("days must be positive")
	}
	return nil
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	analyzer := stats.New(ctx.Store.DB())

	summary, err := analyzer.Summary()
	if err != nil {
		return err
	}
	overview, err := analyzer.ProgressOverview()
	if err != nil {
		return err
	}
	daily, err := analyzer.DailySeries(c.Days)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("Workout stats"))
	fmt.Printf("Today: %d reps   This week: %d reps\n", summary.TodayReps, summary.WeekReps)
	if summary.TotalDays > 0 {
		fmt.Printf("Active on %d days since %s\n", summary.TotalDays, summary.FirstDay)
	}
	fmt.Println()

	fmt.Println(headerStyle.Render("Trends"))
	fmt.Printf("Week over week:   %s\n", formatDelta(overview.Week))
	fmt.Printf("Month over month: %s\n", formatDelta(overview.Month))
	fmt.Println()

	fmt.Println(headerStyle.Render(fmt.Sprintf("Last %d days", c.Days)))
	maxTotal := 0
	for _, d := range daily {
		if d.Total > maxTotal {
			maxTotal = d.Total
		}
	}
	t := newTable("Date", "Reps", "")
	for _, d := range daily {
		t.Row(d.Date, strconv.Itoa(d.Total), sparkBar(d.Total, maxTotal, 20))
	}
	fmt.Println(t)

	if len(summary.TopThisWeek) > 0 {
		fmt.Println(headerStyle.Render("Top exercises this week"))
		top := newTable("Exercise", "Reps", "Sets")
		for _, e := range summary.TopThisWeek {
			top.Row(e.ExerciseName, strconv.Itoa(e.TotalReps), strconv.Itoa(e.Sets))
		}
		fmt.Println(top)
	}

	if c.Months {
		monthly, err := analyzer.MonthlySeries(constants.DefaultSeriesMonths)
		if err != nil {
			return err
		}
		if len(monthly) > 0 {
			fmt.Println(headerStyle.Render("Monthly totals"))
			mt := newTable("Month", "Reps")
			for _, m := range monthly {
				mt.Row(m.Month, strconv.Itoa(m.Total))
			}
			fmt.Println(mt)
		}
	}

	if len(summary.PerExercise) > 0 {
		fmt.Println(headerStyle.Render("Lifetime totals"))
		lt := newTable("Exercise", "Total")
		for _, e := range summary.PerExercise {
			lt.Row(e.ExerciseName, fmt.Sprintf("%d %s", e.TotalReps, unitFor(e.ExerciseName)))
		}
		fmt.Println(lt)
	}

	return nil
}

func formatDelta(d stats.Delta) string {
	arrow := "→"
	style := dimStyle
	if d.Diff > 0 {
		arrow = "↑"
		style = goodStyle
	} else if d.Diff < 0 {
		arrow = "↓"
		style = warnStyle
	}
	return style.Render(fmt.Sprintf("%s %d vs %d (%+d, %.0f%%)", arrow, d.Current, d.Previous, d.Diff, d.Pct))
}

// sparkBar scales total against the window maximum into a width-char bar.
func sparkBar(total, max, width int) string {
	if max == 0 || total == 0 {
		return ""
	}
	n := total * width / max
	if n == 0 {
		n = 1
	}
	bar := make([]rune, n)
	for i := range bar {
		bar[i] = '▇'
	}
	return dimStyle.Render(string(bar))
}
