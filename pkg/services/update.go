// Package services holds the update engine: validation and application of
// a single series update against the store.
package services

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kerbaras/seriestrack/pkg/data"
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidChapter  = errors.New("invalid chapter number")
	ErrEmptyName       = errors.New("series name cannot be empty")
)

// Outcome classifies what an applied update did to the record. It is
// reporting only; the store is written the same way in every case.
type Outcome int

const (
	Created Outcome = iota
	Advanced
	CorrectedDown
	Unchanged
	CategoryChangedOnly
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Advanced:
		return "advanced"
	case CorrectedDown:
		return "corrected down"
	case Unchanged:
		return "unchanged"
	case CategoryChangedOnly:
		return "category changed"
	}
	return "unknown"
}

// UpdateResult reports the before/after state of a successful update.
type UpdateResult struct {
	Name            string
	Outcome         Outcome
	OldChapter      float64
	NewChapter      float64
	OldCategory     data.Category
	NewCategory     data.Category
	CategoryChanged bool
}

// Apply validates and writes a single series update. The store is mutated
// only when every check passes: the category must be in the enumeration and
// chapterInput must parse as a non-negative real number. A new record is
// compared against chapter 0. The new value is written unconditionally,
// including when the chapter is unchanged or decreases.
func Apply(store *data.Store, name, chapterInput string, category data.Category) (UpdateResult, error) {
	if !category.Valid() {
		return UpdateResult{}, fmt.Errorf("%w: %q must be one of %v", ErrInvalidCategory, string(category), data.Categories())
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return UpdateResult{}, ErrEmptyName
	}

	chapter, err := strconv.ParseFloat(strings.TrimSpace(chapterInput), 64)
	if err != nil || math.IsNaN(chapter) || math.IsInf(chapter, 0) {
		return UpdateResult{}, fmt.Errorf("%w: %q must be a number (e.g. 10 or 10.5)", ErrInvalidChapter, chapterInput)
	}
	if chapter < 0 {
		return UpdateResult{}, fmt.Errorf("%w: chapter cannot be negative", ErrInvalidChapter)
	}

	old, existed := store.Get(name)
	if !existed {
		old = data.SeriesRecord{Chapter: 0, Category: category}
	}

	store.Put(name, data.SeriesRecord{Chapter: chapter, Category: category})

	res := UpdateResult{
		Name:            name,
		OldChapter:      old.Chapter,
		NewChapter:      chapter,
		OldCategory:     old.Category,
		NewCategory:     category,
		CategoryChanged: existed && category != old.Category,
	}
	switch {
	case !existed:
		res.Outcome = Created
	case chapter > old.Chapter:
		res.Outcome = Advanced
	case chapter < old.Chapter:
		res.Outcome = CorrectedDown
	case res.CategoryChanged:
		res.Outcome = CategoryChangedOnly
	default:
		res.Outcome = Unchanged
	}
	return res, nil
}

// Describe renders the result the way the tracker reports it to the user.
func (r UpdateResult) Describe() string {
	categoryNote := ""
	if r.CategoryChanged {
		categoryNote = fmt.Sprintf(" and category changed from '%s' to '%s'", r.OldCategory, r.NewCategory)
	}

	switch r.Outcome {
	case Created:
		return fmt.Sprintf("Added new series '%s' (%s) at chapter %s.", r.Name, r.NewCategory, data.FormatChapter(r.NewChapter))
	case Advanced:
		return fmt.Sprintf("Updated '%s': progressed from chapter %s to chapter %s%s.", r.Name, data.FormatChapter(r.OldChapter), data.FormatChapter(r.NewChapter), categoryNote)
	case CorrectedDown:
		return fmt.Sprintf("Corrected '%s' from chapter %s to chapter %s%s.", r.Name, data.FormatChapter(r.OldChapter), data.FormatChapter(r.NewChapter), categoryNote)
	case CategoryChangedOnly:
		return fmt.Sprintf("'%s' stays at chapter %s, category changed to '%s'.", r.Name, data.FormatChapter(r.NewChapter), r.NewCategory)
	default:
		return fmt.Sprintf("'%s' remains at chapter %s. No change made.", r.Name, data.FormatChapter(r.NewChapter))
	}
}
