package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kerbaras/seriestrack/pkg/app"
	"github.com/kerbaras/seriestrack/pkg/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "seriestrack",
	Short: "Track your reading progress across manga, manhwa and manhua",
	Long:  "Track reading progress for serialized publications with an interactive TUI and one-shot commands",
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		a := app.NewApp(loadConfig())
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.seriestrack/config.toml)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}

func loadConfig() config.Config {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Printf("⚠️  %v (using defaults)\n", err)
	}
	return cfg
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
