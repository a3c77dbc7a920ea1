package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kerbaras/seriestrack/pkg/app/styles"
	"github.com/kerbaras/seriestrack/pkg/data"
	"github.com/kerbaras/seriestrack/pkg/services"
)

type findMode int

const (
	findSearching findMode = iota
	findBrowsing
	findUpdating
)

// FindScreen searches the store by case-insensitive substring, shows the
// status of a selected match, and offers a quick chapter update that keeps
// the existing category.
type FindScreen struct {
	sess     *Session
	input    textinput.Model
	chapter  textinput.Model
	results  []data.Entry
	selected int
	mode     findMode
	status   string
	err      error
	width    int
	height   int
}

func NewFindScreen(sess *Session) *FindScreen {
	input := textinput.New()
	input.Placeholder = "Series name (or part of it)..."
	input.Focus()
	input.CharLimit = 100
	input.Width = 50

	chapter := textinput.New()
	chapter.Placeholder = "New chapter number..."
	chapter.CharLimit = 10
	chapter.Width = 25

	return &FindScreen{
		sess:    sess,
		input:   input,
		chapter: chapter,
	}
}

func (s *FindScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *FindScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch s.mode {
		case findSearching:
			if msg.String() == "enter" {
				s.performSearch()
				return s, nil
			}

		case findBrowsing:
			switch msg.String() {
			case "up", "k":
				if len(s.results) > 0 {
					s.selected--
					if s.selected < 0 {
						s.selected = len(s.results) - 1
					}
				}
			case "down", "j":
				if len(s.results) > 0 {
					s.selected++
					if s.selected >= len(s.results) {
						s.selected = 0
					}
				}
			case "enter", "u":
				if len(s.results) > 0 {
					s.mode = findUpdating
					s.chapter.SetValue("")
					s.chapter.Focus()
					return s, textinput.Blink
				}
			case "esc":
				s.backToSearch()
				return s, textinput.Blink
			}
			return s, nil

		case findUpdating:
			switch msg.String() {
			case "enter":
				s.applyUpdate()
				return s, nil
			case "esc":
				s.chapter.Blur()
				s.mode = findBrowsing
				return s, nil
			}
		}
	}

	switch s.mode {
	case findSearching:
		s.input, cmd = s.input.Update(msg)
	case findUpdating:
		s.chapter, cmd = s.chapter.Update(msg)
	}

	return s, cmd
}

func (s *FindScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("🔍 Find Series")

	inputStyle := styles.InputStyle
	if s.mode == findSearching {
		inputStyle = styles.FocusedInputStyle
	}
	inputView := inputStyle.Render(s.input.View())

	var feedback string
	if s.err != nil {
		feedback = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	} else if s.status != "" {
		feedback = styles.StatusSuccess.Render(s.status) + "\n\n"
	}

	var body string
	switch s.mode {
	case findBrowsing:
		body = s.renderResults()
	case findUpdating:
		body = s.renderResults() + "\n" + s.renderPrompt()
	}

	help := styles.HelpStyle.Render(s.helpLine())

	return fmt.Sprintf("%s\n\n%s\n\n%s%s\n\n%s", header, inputView, feedback, body, help)
}

func (s *FindScreen) helpLine() string {
	switch s.mode {
	case findBrowsing:
		return "↑/k ↓/j: navigate • enter/u: update chapter • esc: new search • tab: switch view"
	case findUpdating:
		return "enter: apply update • esc: cancel"
	default:
		return "enter: search • tab: switch view • q: quit"
	}
}

func (s *FindScreen) renderResults() string {
	if len(s.results) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Found %d matching series:", len(s.results))))
	b.WriteString("\n\n")

	for i, e := range s.results {
		badge := styles.CategoryStyle(e.Record.Category).Render(fmt.Sprintf("[%-6s]", e.Record.Category))
		row := fmt.Sprintf("%s %s — chapter %s", badge, e.Name, data.FormatChapter(e.Record.Chapter))
		if i == s.selected {
			b.WriteString(styles.SelectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *FindScreen) renderPrompt() string {
	e := s.results[s.selected]
	label := styles.TextStyle.Render(fmt.Sprintf(
		"New chapter for '%s' (current: %s):", e.Name, data.FormatChapter(e.Record.Chapter),
	))
	return label + "\n" + styles.FocusedInputStyle.Render(s.chapter.View())
}

func (s *FindScreen) performSearch() {
	term := strings.TrimSpace(s.input.Value())
	s.err = nil
	s.status = ""
	if term == "" {
		s.status = "Search term cannot be empty."
		return
	}

	s.results = s.sess.Store.Search(term)
	s.selected = 0
	if len(s.results) == 0 {
		s.status = fmt.Sprintf("No series found matching '%s'.", term)
		return
	}
	s.input.Blur()
	s.mode = findBrowsing
}

func (s *FindScreen) applyUpdate() {
	e := s.results[s.selected]
	result, err := services.Apply(s.sess.Store, e.Name, s.chapter.Value(), e.Record.Category)
	if err != nil {
		s.err = err
		s.status = ""
		return
	}

	s.err = s.sess.AfterUpdate()
	s.status = result.Describe()
	s.chapter.Blur()
	s.mode = findBrowsing

	// Refresh the displayed chapter numbers.
	s.results = s.sess.Store.Search(s.input.Value())
	if s.selected >= len(s.results) {
		s.selected = 0
	}
}

func (s *FindScreen) backToSearch() {
	s.mode = findSearching
	s.results = nil
	s.selected = 0
	s.status = ""
	s.err = nil
	s.input.Focus()
}
