package screens

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/seriestrack/pkg/config"
	"github.com/kerbaras/seriestrack/pkg/data"
)

func newTestSession(t *testing.T, autosave bool) *Session {
	t.Helper()

	cfg := config.Default()
	cfg.DataFile = filepath.Join(t.TempDir(), "list.json")
	cfg.Autosave = autosave

	return &Session{
		Store:  data.NewStore(),
		Repo:   data.NewRepository(cfg.DataFile, cfg.AtomicWrite),
		Config: cfg,
	}
}

func TestAfterUpdateWithAutosave(t *testing.T) {
	sess := newTestSession(t, true)
	sess.Store.Put("Solo Leveling", data.SeriesRecord{Chapter: 110, Category: data.Manhwa})

	require.NoError(t, sess.AfterUpdate())

	_, err := os.Stat(sess.Config.DataFile)
	assert.NoError(t, err, "autosave should have written the document")
}

func TestAfterUpdateWithoutAutosave(t *testing.T) {
	sess := newTestSession(t, false)
	sess.Store.Put("Solo Leveling", data.SeriesRecord{Chapter: 110, Category: data.Manhwa})

	require.NoError(t, sess.AfterUpdate())

	_, err := os.Stat(sess.Config.DataFile)
	assert.True(t, os.IsNotExist(err), "without autosave nothing is written until exit")
}

func TestSessionReloadDiscardsUnsavedChanges(t *testing.T) {
	sess := newTestSession(t, true)
	sess.Store.Put("Berserk", data.SeriesRecord{Chapter: 370, Category: data.Manga})
	require.NoError(t, sess.Save())

	sess.Store.Put("Unsaved", data.SeriesRecord{Chapter: 1, Category: data.Other})
	require.NoError(t, sess.Reload())

	assert.True(t, sess.Store.Contains("Berserk"))
	assert.False(t, sess.Store.Contains("Unsaved"))
}
