// Package codec converts between the tracker store and the human-edited
// text layout: a title line, 44-dash separators, category headers of the
// form "Manga :" and series lines of the form "Name - ep: 12.5".
package codec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kerbaras/seriestrack/pkg/data"
)

// Separator is the block divider used in the text layout.
const Separator = "--------------------------------------------"

// Title is the free-form heading written at the top of exported documents.
const Title = "Lecture:"

var seriesLine = regexp.MustCompile(`^(.+?)\s*-\s*ep:\s*([\d.]+)$`)

// Decode parses text into a Store. Category headers switch the active
// category; series lines are recorded under it. The active category before
// any header is Other. Blank lines, separators and anything that matches
// neither grammar are skipped.
func Decode(text string) *data.Store {
	store := data.NewStore()
	current := data.Other

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "-----") {
			continue
		}

		if strings.HasSuffix(line, ":") {
			header := strings.TrimSpace(strings.TrimSuffix(line, ":"))
			if cat, ok := data.ParseCategory(header); ok {
				current = cat
			}
			// Any other colon-terminated line is not a category switch.
			continue
		}

		m := seriesLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		chapter, err := strconv.ParseFloat(strings.TrimSpace(m[2]), 64)
		if err != nil || name == "" {
			continue
		}
		store.Put(name, data.SeriesRecord{Chapter: chapter, Category: current})
	}

	return store
}

// Encode renders the store in the text layout: categories in enumeration
// order with empty ones omitted, records sorted by name case-insensitively,
// a separator after each block, trailing padding trimmed.
func Encode(store *data.Store) string {
	if store.Len() == 0 {
		return Title + "\n\n" + Separator + "\n\n[No series tracked]\n"
	}

	lines := []string{Title, "", "", "", Separator, "", ""}

	grouped := store.Grouped()
	for _, cat := range data.Categories() {
		entries := grouped[cat]
		if len(entries) == 0 {
			continue
		}
		lines = append(lines, string(cat)+" :", "", "", "")
		for _, e := range entries {
			lines = append(lines, fmt.Sprintf("%s - ep: %s", e.Name, data.FormatChapter(e.Record.Chapter)), "", "", "")
		}
		lines = append(lines, Separator, "", "", "")
	}

	for len(lines) > 0 && (lines[len(lines)-1] == "" || lines[len(lines)-1] == Separator) {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n") + "\n"
}
