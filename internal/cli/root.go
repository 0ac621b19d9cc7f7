// Package cli holds the kong command tree for grind.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rmartel/grind/internal/storage"
)

type Context struct {
	Store storage.Provider
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	tableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("238"))

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("252")).
				Padding(0, 1)

	tableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...)
}

// unitFor returns the display unit for an exercise. Plank variants are
// timed, everything else counts reps. Presentation only, storage always
// holds plain integers.
func unitFor(exerciseName string) string {
	if strings.Contains(strings.ToLower(exerciseName), "plank") {
		return "sec"
	}
	return "reps"
}

// progressBar renders pct (0-100) as a fixed-width bar.
func progressBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	style := warnStyle
	if pct >= 100 {
		style = goodStyle
	}
	return style.Render(bar)
}

func joinTagNames(names []string) string {
	if len(names) == 0 {
		return dimStyle.Render("-")
	}
	return strings.Join(names, ", ")
}
