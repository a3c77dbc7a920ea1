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

const (
	focusName = iota
	focusChapter
	focusCategory
)

// AddScreen adds a new series or revises an existing one: name, chapter and
// category go through the update engine, which rejects bad input without
// touching the store.
type AddScreen struct {
	sess     *Session
	name     textinput.Model
	chapter  textinput.Model
	catIndex int
	focus    int
	status   string
	err      error
	width    int
	height   int
}

func NewAddScreen(sess *Session) *AddScreen {
	name := textinput.New()
	name.Placeholder = "Series name..."
	name.Focus()
	name.CharLimit = 100
	name.Width = 50

	chapter := textinput.New()
	chapter.Placeholder = "e.g. 12 or 12.5"
	chapter.CharLimit = 10
	chapter.Width = 20

	return &AddScreen{
		sess:    sess,
		name:    name,
		chapter: chapter,
	}
}

func (s *AddScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *AddScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if s.focus < focusCategory {
				s.setFocus(s.focus + 1)
				return s, textinput.Blink
			}
			s.submit()
			return s, nil

		case "up":
			if s.focus > focusName {
				s.setFocus(s.focus - 1)
				return s, textinput.Blink
			}

		case "down":
			if s.focus < focusCategory {
				s.setFocus(s.focus + 1)
				return s, textinput.Blink
			}

		case "left":
			if s.focus == focusCategory {
				s.catIndex--
				if s.catIndex < 0 {
					s.catIndex = len(data.Categories()) - 1
				}
				return s, nil
			}

		case "right":
			if s.focus == focusCategory {
				s.catIndex = (s.catIndex + 1) % len(data.Categories())
				return s, nil
			}

		case "esc":
			s.reset()
			return s, textinput.Blink
		}
	}

	switch s.focus {
	case focusName:
		s.name, cmd = s.name.Update(msg)
	case focusChapter:
		s.chapter, cmd = s.chapter.Update(msg)
	}

	return s, cmd
}

func (s *AddScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("✏️  Add / Update Series")

	nameStyle, chapterStyle := styles.InputStyle, styles.InputStyle
	if s.focus == focusName {
		nameStyle = styles.FocusedInputStyle
	}
	if s.focus == focusChapter {
		chapterStyle = styles.FocusedInputStyle
	}

	nameView := styles.MutedStyle.Render("Name") + "\n" + nameStyle.Render(s.name.View())
	chapterView := styles.MutedStyle.Render("Chapter") + "\n" + chapterStyle.Render(s.chapter.View())
	categoryView := styles.MutedStyle.Render("Category") + "\n" + s.renderCategories()

	var feedback string
	if s.err != nil {
		feedback = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
	} else if s.status != "" {
		feedback = styles.StatusSuccess.Render(s.status)
	}

	help := styles.HelpStyle.Render(
		"enter: next field / apply • ↑/↓: move between fields • ←/→: pick category • esc: clear • tab: switch view",
	)

	return fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s\n\n%s\n%s", header, nameView, chapterView, categoryView, feedback, help)
}

func (s *AddScreen) renderCategories() string {
	var parts []string
	for i, cat := range data.Categories() {
		label := fmt.Sprintf(" %s ", cat)
		switch {
		case i == s.catIndex && s.focus == focusCategory:
			parts = append(parts, styles.ActiveTabStyle.Render(label))
		case i == s.catIndex:
			parts = append(parts, styles.SelectedStyle.Render(label))
		default:
			parts = append(parts, styles.InactiveTabStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (s *AddScreen) setFocus(focus int) {
	s.focus = focus
	s.name.Blur()
	s.chapter.Blur()
	switch focus {
	case focusName:
		s.name.Focus()
	case focusChapter:
		s.chapter.Focus()
	}
}

func (s *AddScreen) submit() {
	category := data.Categories()[s.catIndex]
	result, err := services.Apply(s.sess.Store, s.name.Value(), s.chapter.Value(), category)
	if err != nil {
		s.err = err
		s.status = ""
		return
	}

	saveErr := s.sess.AfterUpdate()
	s.reset()
	s.err = saveErr
	s.status = result.Describe()
}

func (s *AddScreen) reset() {
	s.name.SetValue("")
	s.chapter.SetValue("")
	s.catIndex = 0
	s.err = nil
	s.status = ""
	s.setFocus(focusName)
}
