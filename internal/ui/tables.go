// internal/ui/tables.go

package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderTable renders a bordered table with a bold header row.
func RenderTable(headers []string, rows [][]string) string {
	tableStyle := func(row, col int) lipgloss.Style {
		if row == -1 { // headers
			return lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true)
		}
		return lipgloss.NewStyle().Padding(0, 1)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(subtle)).
		StyleFunc(tableStyle).
		Headers(headers...).
		Rows(rows...)

	return t.Render()
}
