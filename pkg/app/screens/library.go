package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kerbaras/seriestrack/pkg/app/components"
	"github.com/kerbaras/seriestrack/pkg/app/styles"
	"github.com/kerbaras/seriestrack/pkg/data"
)

type LibraryScreen struct {
	sess   *Session
	list   *components.SeriesList
	width  int
	height int
	err    error
}

func NewLibraryScreen(sess *Session) *LibraryScreen {
	list := components.NewSeriesList()
	list.Grouped = sess.Config.GroupedView
	return &LibraryScreen{
		sess: sess,
		list: list,
	}
}

func (s *LibraryScreen) Init() tea.Cmd {
	return s.loadLibrary
}

func (s *LibraryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width - 4
		s.list.Height = msg.Height - 10

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.list.Prev()
		case "down", "j":
			s.list.Next()
		case "g":
			s.list.Grouped = !s.list.Grouped
		case "r":
			return s, s.reloadLibrary
		}

	case libraryLoadedMsg:
		s.list.SetItems(msg.items)
		s.err = msg.err
	}

	return s, nil
}

func (s *LibraryScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("📚 Series Library")

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	}

	count := styles.SubtitleStyle.Render(fmt.Sprintf("%d series tracked", s.sess.Store.Len()))

	help := styles.HelpStyle.Render(
		"↑/k: up • ↓/j: down • g: toggle grouping • r: reload from disk • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n%s\n\n%s%s\n%s", header, count, errorMsg, s.list.View(), help)
}

// Messages
type libraryLoadedMsg struct {
	items []data.Entry
	err   error
}

// Commands
func (s *LibraryScreen) loadLibrary() tea.Msg {
	return libraryLoadedMsg{items: s.sess.Store.All()}
}

func (s *LibraryScreen) reloadLibrary() tea.Msg {
	err := s.sess.Reload()
	return libraryLoadedMsg{items: s.sess.Store.All(), err: err}
}
