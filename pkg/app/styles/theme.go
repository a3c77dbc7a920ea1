package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/seriestrack/pkg/data"
)

var (
	// Color palette
	Primary    = lipgloss.Color("#FF6B9D")
	Secondary  = lipgloss.Color("#C792EA")
	Success    = lipgloss.Color("#C3E88D")
	Warning    = lipgloss.Color("#FFCB6B")
	Error      = lipgloss.Color("#F07178")
	Info       = lipgloss.Color("#82AAFF")
	Muted      = lipgloss.Color("#546E7A")
	Foreground = lipgloss.Color("#EEFFFF")

	RoundedBorder = lipgloss.RoundedBorder()
)

var (
	// Title style for headings
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Selected list row
	SelectedStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	StatusSuccess = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Category block header in the library view
	CategoryHeaderStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true).
				Underline(true)

	// Tab styles
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Background(lipgloss.Color("#37474F")).
			Padding(0, 2).
			Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Padding(0, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)

	InputStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Primary).
				Padding(0, 1)
)

// CategoryStyle colors a category badge.
func CategoryStyle(c data.Category) lipgloss.Style {
	switch c {
	case data.Manga:
		return lipgloss.NewStyle().Foreground(Info).Bold(true)
	case data.Manhwa:
		return lipgloss.NewStyle().Foreground(Success).Bold(true)
	case data.Manhua:
		return lipgloss.NewStyle().Foreground(Warning).Bold(true)
	default:
		return MutedStyle
	}
}
