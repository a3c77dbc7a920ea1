package cmd

import (
	"fmt"

	"github.com/kerbaras/seriestrack/pkg/config"
	"github.com/kerbaras/seriestrack/pkg/data"
)

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// openStore loads the backing document for a one-shot command. A corrupt
// document is reported and the command continues with an empty store; the
// file is only overwritten by the next save.
func openStore(cfg config.Config) (*data.Repository, *data.Store) {
	repo := data.NewRepository(cfg.DataFile, cfg.AtomicWrite)
	store, err := repo.Load()
	if err != nil {
		fmt.Printf("⚠️  %v — starting with an empty tracker\n", err)
	}
	return repo, store
}
