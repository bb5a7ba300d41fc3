package ui

import "github.com/charmbracelet/lipgloss"

// Warm neutral palette; the accent comes from the active dish.
var (
	ColorCream    = lipgloss.Color("#F4EDE4")
	ColorMuted    = lipgloss.Color("#A89F94")
	ColorDim      = lipgloss.Color("#5A5A5A")
	ColorInk      = lipgloss.Color("#1E1E1E")
	ColorBar      = lipgloss.Color("#2A2522")
	ColorBorder   = lipgloss.Color("#6B625A")
	ColorWarning  = lipgloss.Color("#FFAA00")
	DefaultAccent = "#F45E5E"
	PlateBackdrop = "#1E1E1E"
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorCream).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorCream).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorMuted).
			Padding(0, 1)

	StyleStatusLocked = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorCream).
			Bold(true).
			Padding(0, 1)

	StyleHeadline = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorDim)
)

// Accent returns a bold foreground style in the accent color.
func Accent(accent string) lipgloss.Style {
	if accent == "" {
		accent = DefaultAccent
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true)
}

// AccentBorder returns the panel border tinted with the accent color.
func AccentBorder(accent string) lipgloss.Style {
	if accent == "" {
		accent = DefaultAccent
	}
	return StylePanelBorder.BorderForeground(lipgloss.Color(accent))
}

// Pill returns the filled label style used for the active dish name.
func Pill(accent string) lipgloss.Style {
	if accent == "" {
		accent = DefaultAccent
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(accent)).
		Foreground(ColorInk).
		Bold(true).
		Padding(0, 2)
}
