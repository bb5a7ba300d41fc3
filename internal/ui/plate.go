package ui

import (
	"math"
	"strings"

	"dish-wheel.klederson.com/internal/carousel"
	"dish-wheel.klederson.com/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// RenderPlate draws the active dish as a round plate. frame scales the
// plate from the center and fades its color in from the backdrop.
func RenderPlate(width, height int, color, label string, frame carousel.PlateFrame) string {
	if width < 9 || height < 5 {
		return ""
	}

	fcx := float64(width-1) / 2
	fcy := float64(height-1) / 2
	full := math.Min(fcx, fcy/config.AspectRatio)
	r := full * clampUnit(frame.Scale)

	rim := lipgloss.NewStyle().Foreground(lipgloss.Color(FadeColor(color, frame.Opacity))).Bold(true)
	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(FadeColor(color, frame.Opacity*0.6)))
	text := lipgloss.NewStyle().Foreground(ColorCream).Bold(true)

	cy := int(math.Round(fcy))
	lbl := []rune(label)
	lblStart := int(math.Round(fcx)) - len(lbl)/2

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			dx := float64(col) - fcx
			dy := (float64(row) - fcy) / config.AspectRatio
			dist := math.Sqrt(dx*dx + dy*dy)

			switch {
			case r < 0.5 || dist > r+0.5:
				sb.WriteByte(' ')
			case row == cy && col >= lblStart && col < lblStart+len(lbl) && r > float64(len(lbl)):
				sb.WriteString(text.Render(string(lbl[col-lblStart])))
			case dist > r-1:
				sb.WriteString(rim.Render("o"))
			default:
				sb.WriteString(fill.Render(":"))
			}
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// FadeColor blends color over the plate backdrop; opacity 1 is the color
// itself. Unparseable colors fall back to the default accent.
func FadeColor(color string, opacity float64) string {
	c, err := colorful.Hex(color)
	if err != nil {
		c, _ = colorful.Hex(DefaultAccent)
	}
	bg, _ := colorful.Hex(PlateBackdrop)
	switch {
	case opacity >= 1:
		return c.Hex()
	case opacity <= 0:
		return bg.Hex()
	}
	return bg.BlendLab(c, opacity).Clamped().Hex()
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
