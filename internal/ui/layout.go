package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the wheel panel and the side column horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, wheelPanel, side, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, wheelPanel, side)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}

// ComposeNarrow stacks the bars around a single panel.
func ComposeNarrow(menuBar, panel, statusBar string) string {
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, panel, statusBar)
}

// ComposeSide stacks the detail panel above the dish list.
func ComposeSide(detail, list string) string {
	return lipgloss.JoinVertical(lipgloss.Left, detail, list)
}
