package data

import "strconv"

// Category classifies a series by publication origin.
type Category string

const (
	Manga  Category = "Manga"
	Manhwa Category = "Manhwa"
	Manhua Category = "Manhua"
	Other  Category = "Other"
)

// Categories returns the fixed enumeration in display order.
func Categories() []Category {
	return []Category{Manga, Manhwa, Manhua, Other}
}

// ParseCategory matches s against the enumeration. The match is exact and
// case-sensitive.
func ParseCategory(s string) (Category, bool) {
	switch c := Category(s); c {
	case Manga, Manhwa, Manhua, Other:
		return c, true
	}
	return "", false
}

func (c Category) Valid() bool {
	_, ok := ParseCategory(string(c))
	return ok
}

// SeriesRecord is the tracked state for one series. Chapter may be
// fractional (12.5) and is never negative.
type SeriesRecord struct {
	Chapter  float64  `json:"chapter"`
	Category Category `json:"category"`
}

// FormatChapter renders a chapter number in its shortest decimal form:
// 12 stays "12", 12.5 stays "12.5".
func FormatChapter(chapter float64) string {
	return strconv.FormatFloat(chapter, 'f', -1, 64)
}
