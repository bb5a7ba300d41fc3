package ui

import (
	"strings"
	"testing"

	"dish-wheel.klederson.com/internal/carousel"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

var salad = carousel.Item{Name: "Healthy Salads", Image: "/dishes/salad.svg", Color: "#93AE75"}

func TestFadeColor(t *testing.T) {
	assert.Equal(t, "#93ae75", FadeColor("#93AE75", 1))
	assert.Equal(t, "#1e1e1e", FadeColor("#93AE75", 0))
	assert.Equal(t, FadeColor(DefaultAccent, 1), FadeColor("not-a-color", 1))

	mid := FadeColor("#93AE75", 0.5)
	assert.NotEqual(t, "#93ae75", mid)
	assert.NotEqual(t, "#1e1e1e", mid)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Non veg", truncate("Non veg", 10))
	assert.Equal(t, "South…", truncate("South Indian Cuisine", 6))
	assert.Equal(t, "…", truncate("abc", 1))
}

func TestRenderDetailPanel_ControlsRow(t *testing.T) {
	out := RenderDetailPanel(DetailView{
		Item:  salad,
		Index: 4,
		Count: 10,
		Plate: carousel.PlateFrame{Scale: 1, Opacity: 1},
		Glyph: "HS",
	}, 40, 20)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 20)
	assert.Contains(t, lines[ControlsRow(20)], "(<")
	assert.Contains(t, lines[ControlsRow(20)], ">)")
	assert.Contains(t, out, "Healthy Salads")
	assert.Contains(t, out, "5/10")
	assert.Contains(t, out, "HS")
}

func TestRenderPlate_ScalesWithFrame(t *testing.T) {
	full := RenderPlate(30, 11, salad.Color, "HS", carousel.PlateFrame{Scale: 1, Opacity: 1})
	small := RenderPlate(30, 11, salad.Color, "HS", carousel.PlateFrame{Scale: 0.3, Opacity: 0.3})
	empty := RenderPlate(30, 11, salad.Color, "HS", carousel.PlateFrame{})

	assert.Greater(t, strings.Count(full, "o")+strings.Count(full, ":"),
		strings.Count(small, "o")+strings.Count(small, ":"))
	assert.Equal(t, "", strings.TrimSpace(empty))
	assert.Equal(t, "", RenderPlate(4, 3, salad.Color, "HS", carousel.PlateFrame{Scale: 1}))
}

func TestRenderDishList_KeepsActiveVisible(t *testing.T) {
	items := make([]carousel.Item, 10)
	for i := range items {
		items[i] = carousel.Item{Name: "dish", Color: "#FFFFFF"}
	}
	items[9] = salad

	out := RenderDishList(items, 9, 30, 8)
	assert.Contains(t, out, "MENU [10]")
	assert.Contains(t, out, "10 Healthy Salads")
	assert.NotContains(t, out, "01 dish")

	assert.Contains(t, RenderDishList(nil, 0, 30, 8), "Nothing on the menu")
}

func TestRenderStatusBar(t *testing.T) {
	out := RenderStatusBar(80, StatusView{Index: 2, Count: 10, Rotation: -72, Locked: true})
	assert.Contains(t, out, "[COOLDOWN]")
	assert.Contains(t, out, "Dish: 3/10")
	assert.Contains(t, out, "Rotation: -72deg")
	assert.Contains(t, out, "Input: wheel")

	out = RenderStatusBar(80, StatusView{Count: 1, Narrow: true})
	assert.Contains(t, out, "[READY]")
	assert.Contains(t, out, "Input: buttons")
}

func TestRenderMenuBar_ShowsAccent(t *testing.T) {
	out := RenderMenuBar(100, salad.Color)
	assert.Contains(t, out, "--primary: #93AE75")
	assert.Equal(t, 100, lipgloss.Width(out))
}
