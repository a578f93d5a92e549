package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/whiskerworks/catnip/internal/ui"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Full-text search over cats",
	Long: `Searches cat names and colors.

Query string syntax is supported:
  catnip search garfield
  catnip search 'gar*'
  catnip search 'color:ginger'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := strings.Join(args, " ")

		cats, err := core.SearchCats(cmd.Context(), term)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if searchJSON {
			return printJSON(cats, false)
		}

		if len(cats) == 0 {
			fmt.Println(ui.Muted.Render("No cats match " + term))
			return nil
		}

		for _, c := range cats {
			display := "gray"
			if cc := cfg.GetColor(c.Color); cc != nil {
				display = cc.Display
			}
			fmt.Printf("%s  %s (%s)\n", ui.ID.Render(c.ID), c.Name, ui.RenderCoatColor(c.Color, display))
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(searchCmd)
}
