package ui

import (
	"fmt"
	"strings"

	"dish-wheel.klederson.com/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, accent string) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"<", "prev"},
		{">", "next"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	left := Accent(accent).Render(title) + menu
	right := StyleMenuLabel.Render("--primary: ") + Accent(accent).Render(accent) + " "

	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
