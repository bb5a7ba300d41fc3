package ui

import (
	"fmt"
	"strings"

	"dish-wheel.klederson.com/internal/carousel"
	"github.com/charmbracelet/lipgloss"
)

// RenderDishList renders the menu with the active dish highlighted. The
// viewport scrolls so the active dish is always visible.
func RenderDishList(items []carousel.Item, active, width, height int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}
	innerH := height - 2
	if innerH < 3 {
		innerH = 3
	}

	header := []string{
		StylePanelTitle.Render(fmt.Sprintf("MENU [%d]", len(items))),
		StyleSeparator.Render(strings.Repeat("-", innerW)),
	}
	space := max(1, innerH-len(header))

	var rows []string
	if len(items) == 0 {
		rows = append(rows, StyleHelp.Render(" Nothing on the menu"))
	} else {
		start := 0
		if active >= space {
			start = active - space + 1
		}
		for i := start; i < len(items) && len(rows) < space; i++ {
			rows = append(rows, renderDishEntry(items[i], i, i == active, innerW))
		}
	}
	for len(rows) < space {
		rows = append(rows, "")
	}

	all := append(header, rows...)
	if len(all) > innerH {
		all = all[:innerH]
	}
	return StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(all, "\n"))
}

func renderDishEntry(it carousel.Item, index int, active bool, width int) string {
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color)).Render("*")
	name := truncate(it.DisplayName(), width-8)
	line := fmt.Sprintf("%02d %s", index+1, name)
	if active {
		return Accent(it.Color).Render(">") + " " + swatch + " " + Pill(it.Color).Padding(0).Render(line)
	}
	return "  " + swatch + " " + StyleMenuLabel.Render(line)
}
