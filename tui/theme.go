package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds every lipgloss style the screens render with. The accent
// matches the web front end's signature green.
type Theme struct {
	Accent lipgloss.Color
	Dim    lipgloss.Color
	Danger lipgloss.Color

	Header    lipgloss.Style
	Title     lipgloss.Style
	Subtle    lipgloss.Style
	ErrorLine lipgloss.Style
	StatusBar lipgloss.Style
	RoleBadge lipgloss.Style

	ListItem     lipgloss.Style
	ListSelected lipgloss.Style

	SeatFree     lipgloss.Style
	SeatSelected lipgloss.Style
	SeatBooked   lipgloss.Style
	SeatCursor   lipgloss.Style

	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonFocused  lipgloss.Style

	Card  lipgloss.Style
	Label lipgloss.Style
	Bar   lipgloss.Style
	Help  lipgloss.Style
}

// DefaultTheme returns the standard color scheme.
func DefaultTheme() Theme {
	accent := lipgloss.Color("#0df38a")
	dim := lipgloss.Color("240")
	danger := lipgloss.Color("#ff5f5f")

	return Theme{
		Accent: accent,
		Dim:    dim,
		Danger: danger,

		Header:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Title:     lipgloss.NewStyle().Bold(true),
		Subtle:    lipgloss.NewStyle().Foreground(dim),
		ErrorLine: lipgloss.NewStyle().Foreground(danger),
		StatusBar: lipgloss.NewStyle().Foreground(dim),
		RoleBadge: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(accent).Padding(0, 1),

		ListItem:     lipgloss.NewStyle().PaddingLeft(2),
		ListSelected: lipgloss.NewStyle().PaddingLeft(0).Foreground(accent).Bold(true),

		SeatFree:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		SeatSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(accent),
		SeatBooked:   lipgloss.NewStyle().Foreground(danger).Strikethrough(true),
		SeatCursor:   lipgloss.NewStyle().Bold(true).Underline(true),

		Button:         lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("250")).Border(lipgloss.RoundedBorder()),
		ButtonDisabled: lipgloss.NewStyle().Padding(0, 2).Foreground(dim).Border(lipgloss.RoundedBorder()).BorderForeground(dim),
		ButtonFocused:  lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("0")).Background(accent).Border(lipgloss.RoundedBorder()).BorderForeground(accent),

		Card:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		Label: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Bar:   lipgloss.NewStyle().Foreground(accent),
		Help:  lipgloss.NewStyle().Foreground(dim),
	}
}
