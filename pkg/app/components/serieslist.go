package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/seriestrack/pkg/app/styles"
	"github.com/kerbaras/seriestrack/pkg/data"
)

// SeriesList renders tracked series either flat (A-Z) or grouped by
// category in enumeration order. Selection moves over series rows only.
type SeriesList struct {
	Items         []data.Entry
	SelectedIndex int
	Width         int
	Height        int
	Grouped       bool
}

func NewSeriesList() *SeriesList {
	return &SeriesList{
		Items:  []data.Entry{},
		Width:  80,
		Height: 20,
	}
}

// SetItems replaces the list contents, clamping the selection.
func (l *SeriesList) SetItems(items []data.Entry) {
	l.Items = items
	if l.SelectedIndex >= len(items) {
		l.SelectedIndex = len(items) - 1
	}
	if l.SelectedIndex < 0 {
		l.SelectedIndex = 0
	}
}

func (l *SeriesList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex++
	if l.SelectedIndex >= len(l.Items) {
		l.SelectedIndex = 0
	}
}

func (l *SeriesList) Prev() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex--
	if l.SelectedIndex < 0 {
		l.SelectedIndex = len(l.Items) - 1
	}
}

func (l *SeriesList) Selected() *data.Entry {
	if len(l.Items) == 0 || l.SelectedIndex >= len(l.Items) {
		return nil
	}
	return &l.Items[l.SelectedIndex]
}

func (l *SeriesList) View() string {
	if len(l.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No series tracked yet")
		return lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	if !l.Grouped {
		var b strings.Builder
		for i, e := range l.Items {
			b.WriteString(l.renderRow(e, i == l.SelectedIndex))
			b.WriteString("\n")
		}
		return b.String()
	}

	// Grouped view keeps the flat item order for selection but displays
	// rows under their category headers, enumeration order, empty omitted.
	index := make(map[string]int, len(l.Items))
	for i, e := range l.Items {
		index[e.Name] = i
	}

	grouped := map[data.Category][]data.Entry{}
	for _, e := range l.Items {
		cat := e.Record.Category
		if !cat.Valid() {
			cat = data.Other
		}
		grouped[cat] = append(grouped[cat], e)
	}

	var b strings.Builder
	for _, cat := range data.Categories() {
		entries := grouped[cat]
		if len(entries) == 0 {
			continue
		}
		b.WriteString(styles.CategoryHeaderStyle.Render(string(cat)))
		b.WriteString("\n")
		for _, e := range entries {
			b.WriteString(l.renderRow(e, index[e.Name] == l.SelectedIndex))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func (l *SeriesList) renderRow(e data.Entry, selected bool) string {
	nameWidth := l.Width - 30
	if nameWidth < 20 {
		nameWidth = 20
	}
	name := e.Name
	if len(name) > nameWidth {
		name = name[:nameWidth-3] + "..."
	}

	badge := styles.CategoryStyle(e.Record.Category).Render(fmt.Sprintf("[%-6s]", e.Record.Category))
	row := fmt.Sprintf("%s %-*s Chapter %s", badge, nameWidth, name, data.FormatChapter(e.Record.Chapter))

	if selected {
		return styles.SelectedStyle.Render("> " + row)
	}
	return "  " + row
}
