package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#2A9D8F")
	colorText   = lipgloss.Color("#F0FDFA")
	colorSubtle = lipgloss.Color("#5C6B73")
	colorGood   = lipgloss.Color("#84CC16")
	colorBad    = lipgloss.Color("#E63946")
	colorWarn   = lipgloss.Color("#E76F51")

	titleBarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Background(lipgloss.Color("#264653")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorSubtle).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Underline(true).
			Padding(0, 2)

	monthStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	cellStyle = lipgloss.NewStyle().
			Foreground(colorText)

	headerRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	subtleStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	goodTextStyle = lipgloss.NewStyle().
			Foreground(colorGood)

	badTextStyle = lipgloss.NewStyle().
			Foreground(colorBad)

	warnTextStyle = lipgloss.NewStyle().
			Foreground(colorWarn)
)
