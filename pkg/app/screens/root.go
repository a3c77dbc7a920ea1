package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/seriestrack/pkg/app/styles"
)

type screenType int

const (
	libraryView screenType = iota
	addView
	findView
)

const screenCount = 3

// RootScreen owns the session and cycles between the library, add and find
// screens. Quitting always persists the store (the final save happens in
// app.Run once the program exits).
type RootScreen struct {
	sess *Session

	currentView screenType
	library     *LibraryScreen
	add         *AddScreen
	find        *FindScreen

	loadWarning string

	width  int
	height int
}

func NewRootScreen(sess *Session, loadWarning string) *RootScreen {
	return &RootScreen{
		sess:        sess,
		currentView: libraryView,
		library:     NewLibraryScreen(sess),
		add:         NewAddScreen(sess),
		find:        NewFindScreen(sess),
		loadWarning: loadWarning,
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.library.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			// "q" is a regular character in the add and find inputs.
			if r.currentView == libraryView {
				return r, tea.Quit
			}
		case "tab":
			r.currentView = (r.currentView + 1) % screenCount
			switch r.currentView {
			case libraryView:
				cmd = r.library.Init()
			case addView:
				cmd = r.add.Init()
			case findView:
				cmd = r.find.Init()
			}
			return r, cmd
		}
	}

	// Forward message to active screen
	switch r.currentView {
	case libraryView:
		newModel, newCmd := r.library.Update(msg)
		r.library = newModel.(*LibraryScreen)
		return r, newCmd
	case addView:
		newModel, newCmd := r.add.Update(msg)
		r.add = newModel.(*AddScreen)
		return r, newCmd
	case findView:
		newModel, newCmd := r.find.Update(msg)
		r.find = newModel.(*FindScreen)
		return r, newCmd
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	tabs := r.renderTabs()

	var warning string
	if r.loadWarning != "" {
		warning = styles.StatusError.Render("⚠ "+r.loadWarning) + "\n"
	}

	var content string
	switch r.currentView {
	case libraryView:
		content = r.library.View()
	case addView:
		content = r.add.View()
	case findView:
		content = r.find.View()
	}

	return fmt.Sprintf("%s\n%s\n%s", tabs, warning, content)
}

func (r *RootScreen) renderTabs() string {
	labels := []string{"Library", "Add", "Find"}
	rendered := make([]string, len(labels))
	for i, label := range labels {
		if screenType(i) == r.currentView {
			rendered[i] = styles.ActiveTabStyle.Render(label)
		} else {
			rendered[i] = styles.InactiveTabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
