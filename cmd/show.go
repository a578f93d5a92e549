package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/whiskerworks/catnip/internal/catcore"
	"github.com/whiskerworks/catnip/internal/ui"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <cat-id>",
	Short: "Show a cat's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		c, err := core.Cat(ctx, args[0])
		if errors.Is(err, catcore.ErrNotFound) {
			return fmt.Errorf("no cat with id %s", args[0])
		}
		if err != nil {
			return err
		}

		if showJSON {
			return printJSON(c, false)
		}

		display := "gray"
		if cc := cfg.GetColor(c.Color); cc != nil {
			display = cc.Display
		}

		fmt.Println(ui.ID.Render(c.ID) + "  " + c.Name)
		fmt.Println("  color:  " + ui.RenderCoatColor(c.Color, display))
		fmt.Println("  master: " + ui.ID.Render(c.MasterID))

		brother, err := core.FavBrother(ctx, c)
		if err != nil {
			return err
		}
		if brother != nil {
			fmt.Printf("  favorite brother: %s %s\n", ui.ID.Render(brother.ID), brother.Name)
		}

		admirers, err := core.Admirers(ctx, c.ID)
		if err != nil {
			return err
		}
		if len(admirers) > 0 {
			fmt.Println("  favorite brother of:")
			for _, a := range admirers {
				fmt.Printf("    %s %s\n", ui.ID.Render(a.ID), a.Name)
			}
		}

		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(showCmd)
}
