package wheel

import (
	"strings"
	"testing"

	"dish-wheel.klederson.com/internal/carousel"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellAngle_Convention(t *testing.T) {
	assert.InDelta(t, 0.0, CellAngle(10, 0, 0, 0), 1e-9, "right")
	assert.InDelta(t, 90.0, CellAngle(0, 5, 0, 0), 1e-9, "below")
	assert.InDelta(t, 180.0, CellAngle(-10, 0, 0, 0), 1e-9, "left")
	assert.InDelta(t, 270.0, CellAngle(0, -5, 0, 0), 1e-9, "above")
}

func TestCellDistance_AspectCorrected(t *testing.T) {
	assert.InDelta(t, 10.0, CellDistance(10, 0, 0, 0), 1e-9)
	assert.InDelta(t, 10.0, CellDistance(0, 5, 0, 0), 1e-9)
}

func TestGeometry_CellRoundTrip(t *testing.T) {
	g := NewGeometry(60, 24)
	for _, a := range []float64{0, 90, 180, carousel.ViewAngle} {
		col, row := g.Cell(a)
		assert.True(t, g.Contains(col, row))
		assert.InDelta(t, a, g.Angle(col, row), 8, "angle %v", a)
	}
	assert.False(t, g.Contains(0, 0))
}

func TestRingChar(t *testing.T) {
	assert.Equal(t, '|', RingChar(0))
	assert.Equal(t, '/', RingChar(45))
	assert.Equal(t, '-', RingChar(90))
	assert.Equal(t, '\\', RingChar(135))
	assert.Equal(t, '-', RingChar(-90))
	assert.Equal(t, '\\', RingChar(315))
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "IC", Glyph(carousel.Item{Name: "Italian cuisine"}))
	assert.Equal(t, "NO", Glyph(carousel.Item{Name: "Non"}))
	assert.Equal(t, "X", Glyph(carousel.Item{Name: "x"}))
	assert.Equal(t, "FD", Glyph(carousel.Item{}), "falls back to the generic name")
	assert.Equal(t, "??", Glyph(carousel.Item{Name: "--"}))
}

func TestRender(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	items := []carousel.Item{
		{Name: "Italian cuisine", Color: "#F45E5E"},
		{Name: "Mexican cuisine", Color: "#FC9A63"},
		{Name: "Non veg", Color: "#F56E2E"},
		{Name: "North Indian", Color: "#94AC20"},
	}
	g := NewGeometry(60, 24)
	out := Render(g, View{
		Items:      items,
		Placements: carousel.Positions(items, g.Path(), carousel.LayoutOptions{Start: -0.25}),
		Active:     0,
		Accent:     items[0].Color,
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 24)
	for _, glyph := range []string{"IC", "MC", "NV", "NI"} {
		assert.Contains(t, out, glyph)
	}

	// The active item sits at the top with the marker right above it.
	col, row := g.Cell(carousel.ViewAngle)
	assert.Contains(t, lines[row], "IC")
	assert.Equal(t, "v", string([]rune(lines[row-1])[col]))
}

func TestRender_TooSmall(t *testing.T) {
	assert.Equal(t, "", Render(Geometry{Width: 5, Height: 3}, View{}))
}
