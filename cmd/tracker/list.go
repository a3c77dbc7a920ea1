package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kerbaras/seriestrack/pkg/data"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tracked series",
	Long:  "Display every tracked series in a formatted table, grouped by category or flat A-Z",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		_, store := openStore(cfg)

		if store.Len() == 0 {
			fmt.Println("📚 Series tracker is currently empty. Use 'seriestrack add' to track a series.")
			return
		}

		flat, _ := cmd.Flags().GetBool("flat")
		grouped := cfg.GroupedView && !flat

		columns := []table.Column{
			{Title: "Category", Width: 10},
			{Title: "Name", Width: 40},
			{Title: "Chapter", Width: 10},
		}

		rows := []table.Row{}
		appendRow := func(e data.Entry) {
			rows = append(rows, table.Row{
				string(e.Record.Category),
				truncateString(e.Name, 38),
				data.FormatChapter(e.Record.Chapter),
			})
		}

		if grouped {
			byCategory := store.Grouped()
			for _, cat := range data.Categories() {
				for _, e := range byCategory[cat] {
					appendRow(e)
				}
			}
		} else {
			for _, e := range store.All() {
				appendRow(e)
			}
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = lipgloss.NewStyle()
		t.SetStyles(s)

		fmt.Printf("\n📚 Tracking %d series\n\n", store.Len())
		fmt.Println(t.View())
	},
}

func init() {
	listCmd.Flags().Bool("flat", false, "Flat A-Z listing instead of grouping by category")
}
