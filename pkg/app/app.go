package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kerbaras/seriestrack/pkg/app/screens"
	"github.com/kerbaras/seriestrack/pkg/config"
	"github.com/kerbaras/seriestrack/pkg/data"
)

type App struct {
	cfg config.Config
}

func NewApp(cfg config.Config) *App {
	return &App{cfg: cfg}
}

// Run loads the store, drives the TUI until the user quits, and persists
// the store on the way out. A corrupt backing document starts the session
// with an empty store; the file on disk is only replaced by the exit save.
func (a *App) Run() error {
	repo := data.NewRepository(a.cfg.DataFile, a.cfg.AtomicWrite)

	store, err := repo.Load()
	var loadWarning string
	if err != nil {
		if !errors.Is(err, data.ErrCorruptDocument) {
			return err
		}
		loadWarning = fmt.Sprintf("%v — starting with an empty tracker", err)
	}

	sess := &screens.Session{Store: store, Repo: repo, Config: a.cfg}
	model := screens.NewRootScreen(sess, loadWarning)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	// Exit always persists, whatever the autosave policy was during the
	// session.
	return sess.Save()
}
