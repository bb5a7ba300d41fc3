package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusView holds the values shown in the status bar.
type StatusView struct {
	Index, Count int
	Rotation     float64
	Locked       bool
	Dragging     bool
	Narrow       bool
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s StatusView) string {
	gate := StyleMenuLabel.Render("[READY]")
	if s.Locked {
		gate = StyleStatusLocked.Render("[COOLDOWN]")
	}

	mode := "wheel"
	switch {
	case s.Narrow:
		mode = "buttons"
	case s.Dragging:
		mode = "dragging"
	}

	info := fmt.Sprintf(" Dish: %d/%d  Rotation: %ddeg  Input: %s",
		s.Index+1, s.Count, int(s.Rotation), mode)

	content := gate + StyleStatusBar.Render(info)

	gap := width - 2 - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
