package wheel

import (
	"math"
	"strings"
	"unicode"

	"dish-wheel.klederson.com/internal/carousel"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorRing = lipgloss.Color("#5A5A5A")
	colorHub  = lipgloss.Color("#8A8A8A")

	styleRing = lipgloss.NewStyle().Foreground(colorRing)
	styleHub  = lipgloss.NewStyle().Foreground(colorHub)
)

// View is everything the renderer needs for one frame.
type View struct {
	Items      []carousel.Item
	Placements []carousel.Placement
	Rotation   float64 // Visible rotation in degrees
	Active     int
	Accent     string
}

type cell struct {
	ch    rune
	style lipgloss.Style
	set   bool
}

// Render draws the wheel: the ring, every item at its rotated slot and a
// marker above the viewing position.
func Render(g Geometry, v View) string {
	if g.Width < 10 || g.Height < 5 {
		return ""
	}

	grid := make([][]cell, g.Height)
	for i := range grid {
		grid[i] = make([]cell, g.Width)
	}
	put := func(col, row int, ch rune, st lipgloss.Style) {
		if col >= 0 && col < g.Width && row >= 0 && row < g.Height {
			grid[row][col] = cell{ch: ch, style: st, set: true}
		}
	}

	// Ring
	steps := int(2*math.Pi*g.Radius) * 2
	for i := 0; i < steps; i++ {
		a := float64(i) * 360 / float64(steps)
		col, row := g.Cell(a)
		put(col, row, RingChar(a), styleRing)
	}

	// Hub
	put(g.CX, g.CY, '+', styleHub)

	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(v.Accent)).Bold(true)

	// Viewing marker
	topCol, topRow := g.Cell(carousel.ViewAngle)
	put(topCol, topRow-1, 'v', accent)

	// Items, active last so it is never overdrawn
	order := make([]carousel.Placement, 0, len(v.Placements))
	for _, p := range v.Placements {
		if p.Index != v.Active {
			order = append(order, p)
		}
	}
	for _, p := range v.Placements {
		if p.Index == v.Active {
			order = append(order, p)
		}
	}
	for _, p := range order {
		if p.Index < 0 || p.Index >= len(v.Items) {
			continue
		}
		it := v.Items[p.Index]
		col, row := g.Cell(p.Angle + v.Rotation)
		label := []rune(Glyph(it))
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color))
		if p.Index == v.Active {
			st = st.Bold(true).Reverse(true)
		}
		start := col - len(label)/2
		for i, ch := range label {
			put(start+i, row, ch, st)
		}
	}

	var sb strings.Builder
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			c := grid[row][col]
			if !c.set {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(c.style.Render(string(c.ch)))
		}
		if row < g.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Glyph returns the short label drawn for an item on the ring: the
// initials of its first two words, or its first two letters.
func Glyph(it carousel.Item) string {
	words := strings.FieldsFunc(it.DisplayName(), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var out []rune
	switch {
	case len(words) >= 2:
		out = []rune{[]rune(words[0])[0], []rune(words[1])[0]}
	case len(words) == 1:
		out = []rune(words[0])
		if len(out) > 2 {
			out = out[:2]
		}
	default:
		return "??"
	}
	return strings.ToUpper(string(out))
}
