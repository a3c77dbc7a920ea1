package screens

import (
	"github.com/kerbaras/seriestrack/pkg/config"
	"github.com/kerbaras/seriestrack/pkg/data"
)

// Session is the state shared by every screen: the in-memory store, the
// repository it persists to, and the active configuration.
type Session struct {
	Store  *data.Store
	Repo   *data.Repository
	Config config.Config
}

// Save persists the full store.
func (s *Session) Save() error {
	return s.Repo.Save(s.Store)
}

// Reload replaces the in-memory store with the on-disk state. Unsaved
// changes are discarded.
func (s *Session) Reload() error {
	store, err := s.Repo.Load()
	s.Store = store
	return err
}

// AfterUpdate persists the store when autosave is on. With autosave off the
// store is only written on exit.
func (s *Session) AfterUpdate() error {
	if !s.Config.Autosave {
		return nil
	}
	return s.Save()
}
