package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerbaras/seriestrack/pkg/data"
	"github.com/kerbaras/seriestrack/pkg/services"
)

var addCmd = &cobra.Command{
	Use:   "add [name] [chapter] [category]",
	Short: "Add a series or update its chapter",
	Long:  "Add a new series to the tracker, or revise the chapter and category of an existing one",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		name, chapter, categoryArg := args[0], args[1], args[2]

		category, ok := data.ParseCategory(categoryArg)
		if !ok {
			cobra.CheckErr(fmt.Errorf("invalid category %q: must be one of %v", categoryArg, data.Categories()))
		}

		cfg := loadConfig()
		repo, store := openStore(cfg)

		result, err := services.Apply(store, name, chapter, category)
		if err != nil {
			cobra.CheckErr(err)
		}

		// One-shot process: always persist before exiting.
		if err := repo.Save(store); err != nil {
			cobra.CheckErr(fmt.Errorf("save failed: %w", err))
		}

		fmt.Printf("✅ %s\n", result.Describe())
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
