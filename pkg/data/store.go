package data

import (
	"sort"
	"strings"
)

// Entry pairs a series name with its record for sorted traversal.
type Entry struct {
	Name   string
	Record SeriesRecord
}

// Store is the in-memory set of tracked series, keyed by name. Names are
// case-sensitive identities; only search and sorting fold case.
type Store struct {
	records map[string]SeriesRecord
}

func NewStore() *Store {
	return &Store{records: make(map[string]SeriesRecord)}
}

func (s *Store) Get(name string) (SeriesRecord, bool) {
	rec, ok := s.records[name]
	return rec, ok
}

func (s *Store) Put(name string, rec SeriesRecord) {
	s.records[name] = rec
}

func (s *Store) Contains(name string) bool {
	_, ok := s.records[name]
	return ok
}

func (s *Store) Len() int {
	return len(s.records)
}

// All returns every entry sorted by name, case-insensitive ascending.
func (s *Store) All() []Entry {
	entries := make([]Entry, 0, len(s.records))
	for name, rec := range s.records {
		entries = append(entries, Entry{Name: name, Record: rec})
	}
	sortEntries(entries)
	return entries
}

// Search returns entries whose name contains term, ignoring case.
func (s *Store) Search(term string) []Entry {
	term = strings.ToLower(strings.TrimSpace(term))
	var matches []Entry
	for _, e := range s.All() {
		if strings.Contains(strings.ToLower(e.Name), term) {
			matches = append(matches, e)
		}
	}
	return matches
}

// Grouped buckets entries by category. Records carrying a value outside the
// enumeration land in Other; the stored value itself is left as-is.
func (s *Store) Grouped() map[Category][]Entry {
	grouped := make(map[Category][]Entry, len(Categories()))
	for _, e := range s.All() {
		cat := e.Record.Category
		if !cat.Valid() {
			cat = Other
		}
		grouped[cat] = append(grouped[cat], e)
	}
	return grouped
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		li, lj := strings.ToLower(entries[i].Name), strings.ToLower(entries[j].Name)
		if li == lj {
			return entries[i].Name < entries[j].Name
		}
		return li < lj
	})
}
