package data

import "testing"

func TestParseCategory(t *testing.T) {
	for _, name := range []string{"Manga", "Manhwa", "Manhua", "Other"} {
		cat, ok := ParseCategory(name)
		if !ok {
			t.Errorf("Expected %q to parse", name)
		}
		if string(cat) != name {
			t.Errorf("Expected category %q, got %q", name, cat)
		}
	}
}

func TestParseCategoryRejectsUnknown(t *testing.T) {
	for _, name := range []string{"", "manga", "MANGA", "Comic", "Manga "} {
		if _, ok := ParseCategory(name); ok {
			t.Errorf("Expected %q to be rejected", name)
		}
	}
}

func TestCategoriesOrder(t *testing.T) {
	cats := Categories()
	want := []Category{Manga, Manhwa, Manhua, Other}

	if len(cats) != len(want) {
		t.Fatalf("Expected %d categories, got %d", len(want), len(cats))
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("Expected category %q at position %d, got %q", want[i], i, cats[i])
		}
	}
}

func TestFormatChapter(t *testing.T) {
	cases := map[float64]string{
		0:     "0",
		12:    "12",
		12.5:  "12.5",
		100.0: "100",
		0.5:   "0.5",
	}

	for chapter, want := range cases {
		if got := FormatChapter(chapter); got != want {
			t.Errorf("FormatChapter(%v) = %q, want %q", chapter, got, want)
		}
	}
}
