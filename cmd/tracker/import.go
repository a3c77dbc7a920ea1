package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kerbaras/seriestrack/pkg/codec"
	"github.com/kerbaras/seriestrack/pkg/data"
)

var importCmd = &cobra.Command{
	Use:   "import [textfile]",
	Short: "Import series from a text document",
	Long: `Parse a human-edited text document into the tracker's JSON store.

The document uses category headers ("Manga :") and series lines
("Solo Leveling - ep: 12.5"). Lines matching neither grammar are skipped.
The existing store is replaced wholesale.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			cobra.CheckErr(fmt.Errorf("read input file: %w", err))
		}

		store := codec.Decode(string(raw))

		cfg := loadConfig()
		repo := data.NewRepository(cfg.DataFile, cfg.AtomicWrite)
		if err := repo.Save(store); err != nil {
			cobra.CheckErr(fmt.Errorf("save failed: %w", err))
		}

		fmt.Printf("✅ Imported %d series to %s\n", store.Len(), repo.Path())
	},
}
