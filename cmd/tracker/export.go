package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kerbaras/seriestrack/pkg/codec"
	"github.com/kerbaras/seriestrack/pkg/data"
)

var exportCmd = &cobra.Command{
	Use:   "export [outfile]",
	Short: "Export the tracker to a text document",
	Long: `Render the tracker's JSON store as a human-editable text document:
categories in fixed order, names sorted A-Z, empty categories omitted.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		repo := data.NewRepository(cfg.DataFile, cfg.AtomicWrite)

		// Unlike the interactive tracker, a broken store document is fatal
		// here: exporting an empty document would look like data loss.
		store, err := repo.Load()
		if err != nil {
			cobra.CheckErr(err)
		}

		text := codec.Encode(store)
		if err := os.WriteFile(args[0], []byte(text), 0o644); err != nil {
			cobra.CheckErr(fmt.Errorf("write output file: %w", err))
		}

		fmt.Printf("✅ Exported %d series to %s\n", store.Len(), args[0])
	},
}
