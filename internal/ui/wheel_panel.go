package ui

// RenderWheelPanel wraps wheel content with a styled border.
// The wheel itself is rendered externally to avoid import cycles.
func RenderWheelPanel(width, height int, wheelContent, accent string) string {
	content := wheelContent + "\n" + center(StyleHelp.Render("drag to spin, scroll to step"), width-4)
	return AccentBorder(accent).Width(width - 2).Height(height - 2).Render(content)
}
