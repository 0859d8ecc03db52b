package app

import (
	"github.com/charmbracelet/lipgloss"
)

// Screen indicates which setup screen is currently shown.
type Screen int

const (
	ScreenUsername Screen = iota
	ScreenLanguages
	ScreenDone
)

// Name is the program name used in help and messages.
const Name = "aor"

// Shared styles.
var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).MarginTop(1)
	HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	HelpStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888"))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
	BannerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9FD3FF"))
)
