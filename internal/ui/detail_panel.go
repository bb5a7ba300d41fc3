package ui

import (
	"fmt"
	"strings"

	"dish-wheel.klederson.com/internal/carousel"
	"github.com/charmbracelet/lipgloss"
)

// DetailView is what the detail panel shows for the active dish.
type DetailView struct {
	Item   carousel.Item
	Index  int
	Count  int
	Plate  carousel.PlateFrame
	Glyph  string
	Narrow bool
}

// ControlsRow returns the row, relative to the panel top, that holds the
// previous/next spoons in a panel of the given height.
func ControlsRow(height int) int {
	return height - 3
}

// RenderDetailPanel renders the headline, the plate, the name pill and the
// spoon controls. The border is tinted with the dish accent.
func RenderDetailPanel(d DetailView, width, height int) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}
	innerH := height - 2
	if innerH < 6 {
		innerH = 6
	}

	accent := Accent(d.Item.Color)
	counter := StyleHelp.Render(fmt.Sprintf("%d/%d", d.Index+1, d.Count))
	title := accent.Render("Delicious.")
	titleLine := title + strings.Repeat(" ", max(0, innerW-lipgloss.Width(title)-lipgloss.Width(counter))) + counter

	lines := []string{
		titleLine,
		StyleHeadline.Render("One stop, Many routes"),
		StyleSeparator.Render(strings.Repeat("-", innerW)),
	}

	// Plate fills whatever is left above the pill, controls and hint.
	plateH := innerH - len(lines) - 3
	if plateH >= 5 {
		plateW := min(innerW, plateH*4)
		plate := RenderPlate(plateW, plateH, d.Item.Color, d.Glyph, d.Plate)
		pad := strings.Repeat(" ", max(0, (innerW-plateW)/2))
		for _, l := range strings.Split(plate, "\n") {
			lines = append(lines, pad+l)
		}
	}
	for len(lines) < innerH-3 {
		lines = append(lines, "")
	}

	lines = append(lines, center(Pill(d.Item.Color).Render(truncate(d.Item.DisplayName(), innerW-6)), innerW))
	lines = append(lines, center(renderSpoons(d.Item.Color), innerW))

	hint := "[<] prev  [>] next"
	if d.Narrow {
		hint += "  (buttons only)"
	}
	lines = append(lines, center(StyleHelp.Render(truncate(hint, innerW)), innerW))

	if len(lines) > innerH {
		lines = lines[len(lines)-innerH:]
	}
	content := strings.Join(lines, "\n")
	return AccentBorder(d.Item.Color).Width(width - 2).Height(innerH).Render(content)
}

func renderSpoons(color string) string {
	accent := Accent(color)
	left := accent.Render("(<") + StyleHelp.Render("====")
	right := StyleHelp.Render("====") + accent.Render(">)")
	return left + "   " + right
}

func center(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n < 1 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
