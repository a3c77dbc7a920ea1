package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/kerbaras/seriestrack/pkg/data"
)

var findCmd = &cobra.Command{
	Use:   "find [term]",
	Short: "Find tracked series by name",
	Long:  "Search tracked series by case-insensitive substring and display the matches in a table",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		term := strings.Join(args, " ")

		cfg := loadConfig()
		_, store := openStore(cfg)

		matches := store.Search(term)
		if len(matches) == 0 {
			fmt.Printf("No series found matching '%s'.\n", term)
			return
		}

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(purple)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("#", "Name", "Category", "Chapter")

		for i, e := range matches {
			t.Row(
				fmt.Sprintf("%d", i+1),
				truncateString(e.Name, 58),
				string(e.Record.Category),
				data.FormatChapter(e.Record.Chapter),
			)
		}

		fmt.Println(t)
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
