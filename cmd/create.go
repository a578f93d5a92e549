package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/whiskerworks/catnip/internal/catcore"
	"github.com/whiskerworks/catnip/internal/config"
	"github.com/whiskerworks/catnip/internal/ui"
)

var (
	createColor   string
	createMaster  string
	createBrother string
	createJSON    bool
)

var createCmd = &cobra.Command{
	Use:     "create <name>",
	Aliases: []string{"c", "new"},
	Short:   "Create a new cat",
	Long:    `Creates a new cat under an existing master, with an optional favorite brother.`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		input := catcore.CatInput{
			Name:     name,
			Color:    createColor,
			MasterID: createMaster,
		}
		if createBrother != "" {
			input.FavBrotherID = &createBrother
		}

		c, err := core.CreateCat(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("failed to create cat: %w", err)
		}

		if createJSON {
			return printJSON(c, false)
		}

		fmt.Println(ui.Success.Render("Created ") + ui.ID.Render(c.ID) + " " + c.Name)
		return nil
	},
}

var createMasterCmd = &cobra.Command{
	Use:   "create-master",
	Short: "Create a new (catless) master",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := core.CreateMaster(cmd.Context(), nil)
		if err != nil {
			return fmt.Errorf("failed to create master: %w", err)
		}

		if createJSON {
			return printJSON(m, false)
		}

		fmt.Println(ui.Success.Render("Created master ") + ui.ID.Render(m.ID))
		return nil
	},
}

func init() {
	colorNames := make([]string, len(config.DefaultColors))
	for i, c := range config.DefaultColors {
		colorNames[i] = c.Name
	}

	createCmd.Flags().StringVarP(&createColor, "color", "c", "", "Coat color ("+strings.Join(colorNames, ", ")+")")
	createCmd.Flags().StringVarP(&createMaster, "master", "m", "", "Owning master ID")
	createCmd.Flags().StringVar(&createBrother, "brother", "", "Favorite brother cat ID")
	createCmd.Flags().BoolVar(&createJSON, "json", false, "Output as JSON")
	createCmd.MarkFlagRequired("color")
	createCmd.MarkFlagRequired("master")
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(createMasterCmd)
}
