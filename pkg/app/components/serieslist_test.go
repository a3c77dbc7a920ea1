package components

import (
	"strings"
	"testing"

	"github.com/kerbaras/seriestrack/pkg/data"
)

func sampleItems() []data.Entry {
	return []data.Entry{
		{Name: "Berserk", Record: data.SeriesRecord{Chapter: 370, Category: data.Manga}},
		{Name: "Solo Leveling", Record: data.SeriesRecord{Chapter: 110, Category: data.Manhwa}},
		{Name: "Tales of Demons", Record: data.SeriesRecord{Chapter: 440, Category: data.Manhua}},
	}
}

func TestNewSeriesList(t *testing.T) {
	list := NewSeriesList()

	if list == nil {
		t.Fatal("Expected series list to be created")
	}

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex)
	}

	if len(list.Items) != 0 {
		t.Errorf("Expected 0 items, got %d", len(list.Items))
	}
}

func TestSetItemsClampsSelection(t *testing.T) {
	list := NewSeriesList()
	list.SetItems(sampleItems())
	list.SelectedIndex = 2

	// Set fewer items
	list.SetItems(sampleItems()[:1])

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to be clamped to 0, got %d", list.SelectedIndex)
	}
}

func TestNextWrapsAround(t *testing.T) {
	list := NewSeriesList()
	list.SetItems(sampleItems())

	list.Next()
	list.Next()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected SelectedIndex 2, got %d", list.SelectedIndex)
	}

	list.Next()
	if list.SelectedIndex != 0 {
		t.Errorf("Expected wrap to 0, got %d", list.SelectedIndex)
	}
}

func TestPrevWrapsAround(t *testing.T) {
	list := NewSeriesList()
	list.SetItems(sampleItems())

	list.Prev()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected wrap to last item, got %d", list.SelectedIndex)
	}
}

func TestNavigationOnEmptyList(t *testing.T) {
	list := NewSeriesList()

	list.Next()
	list.Prev()

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0 on empty list, got %d", list.SelectedIndex)
	}

	if list.Selected() != nil {
		t.Error("Expected Selected() to be nil on empty list")
	}
}

func TestSelected(t *testing.T) {
	list := NewSeriesList()
	list.SetItems(sampleItems())
	list.Next()

	selected := list.Selected()
	if selected == nil {
		t.Fatal("Expected a selected entry")
	}
	if selected.Name != "Solo Leveling" {
		t.Errorf("Expected 'Solo Leveling', got %q", selected.Name)
	}
}

func TestViewFlat(t *testing.T) {
	list := NewSeriesList()
	list.SetItems(sampleItems())

	view := list.View()

	for _, name := range []string{"Berserk", "Solo Leveling", "Tales of Demons"} {
		if !strings.Contains(view, name) {
			t.Errorf("Expected view to contain %q", name)
		}
	}
}

func TestViewGroupedShowsHeadersInOrder(t *testing.T) {
	list := NewSeriesList()
	list.Grouped = true
	list.SetItems(sampleItems())

	view := list.View()

	mangaIdx := strings.Index(view, "Manga")
	manhwaIdx := strings.Index(view, "Manhwa")
	manhuaIdx := strings.Index(view, "Manhua")

	if mangaIdx < 0 || manhwaIdx < 0 || manhuaIdx < 0 {
		t.Fatalf("Expected all category headers in view")
	}
	if !(mangaIdx < manhwaIdx && manhwaIdx < manhuaIdx) {
		t.Errorf("Expected headers in enumeration order, got %d %d %d", mangaIdx, manhwaIdx, manhuaIdx)
	}

	// No series in Other: header omitted.
	if strings.Contains(view, "Other") {
		t.Error("Expected empty Other category to be omitted")
	}
}

func TestViewEmpty(t *testing.T) {
	list := NewSeriesList()

	view := list.View()
	if !strings.Contains(view, "No series tracked yet") {
		t.Error("Expected empty state message")
	}
}
