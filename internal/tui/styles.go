// Package tui implements the interactive Bubble Tea views: the traveler
// calculator, which recomputes on every change, and the ledger browser.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorHeader    = lipgloss.Color("39")
	ColorBorder    = lipgloss.Color("240")
	ColorLabel     = lipgloss.Color("250")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("243")
	ColorHighlight = lipgloss.Color("42")
	ColorWarning   = lipgloss.Color("214")
	ColorError     = lipgloss.Color("196")
)

// Glyphs.
const (
	IconFocus      = "▸"
	IconCursor     = "▌"
	IconArrowLeft  = "◂"
	IconArrowRight = "▸"
	IconCheck      = "✓"
)

//nolint:gochecknoglobals // shared styles
var (
	HeaderStyle        = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle         = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle         = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	FocusStyle         = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	SubtleStyle        = lipgloss.NewStyle().Foreground(ColorMuted)
	WarningStyle       = lipgloss.NewStyle().Foreground(ColorWarning)
	ErrorStyle         = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	BoxStyle           = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorBorder).Padding(0, 1)
	TableHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(ColorBorder)
	TableSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
)
