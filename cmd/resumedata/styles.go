package main

import "github.com/charmbracelet/lipgloss"

var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB84D")).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

func summaryLine(out, workbook string) string {
	return SuccessStyle.Render("Wrote "+out) + PathStyle.Render(" from "+workbook)
}
