package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/whiskerworks/catnip/internal/ui"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all masters and their cats",
	RunE: func(cmd *cobra.Command, args []string) error {
		masters, err := core.Masters(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list masters: %w", err)
		}

		if listJSON {
			return printJSON(masters, false)
		}

		if len(masters) == 0 {
			fmt.Println(ui.Muted.Render("No masters found. Create some with: catnip seed"))
			return nil
		}

		idStyle := lipgloss.NewStyle().Width(14)
		colorStyle := lipgloss.NewStyle().Width(10)

		for _, m := range masters {
			fmt.Println(ui.ID.Render(m.ID) + ui.Muted.Render(fmt.Sprintf("  (%d cats)", len(m.Cats))))
			for _, c := range m.Cats {
				display := "gray"
				if cc := cfg.GetColor(c.Color); cc != nil {
					display = cc.Display
				}
				row := lipgloss.JoinHorizontal(lipgloss.Top,
					"  ",
					idStyle.Render(ui.ID.Render(c.ID)),
					colorStyle.Render(ui.RenderCoatColor(c.Color, display)),
					c.Name,
				)
				if c.HasFavBrother() {
					row += ui.Muted.Render("  ♥ " + *c.FavBrotherID)
				}
				fmt.Println(row)
			}
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}
