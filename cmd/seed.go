package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/whiskerworks/catnip/internal/catcore"
	"github.com/whiskerworks/catnip/internal/ui"
)

// defaultSeed is the example dataset: one master with three cats, two of
// which name each other as favorite brothers.
const defaultSeed = `masters:
  - cats:
      - name: Garfield
        color: ginger
        fav_brother: Azrael
      - name: Azrael
        color: tuxedo
        fav_brother: Garfield
      - name: Salem
        color: black
`

var seedJSON bool

var seedCmd = &cobra.Command{
	Use:   "seed [file]",
	Short: "Create example masters and cats",
	Long: `Creates masters with nested cats from a YAML seed file, or from the
built-in example dataset when no file is given.

Seed file format:
  masters:
    - cats:
        - name: Garfield
          color: ginger
          fav_brother: Azrael
        - name: Azrael
          color: tuxedo

fav_brother references a sibling cat by name within the same master.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var sf *catcore.SeedFile
		var err error

		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening seed file: %w", err)
			}
			defer f.Close()
			sf, err = catcore.ParseSeed(f)
			if err != nil {
				return err
			}
		} else {
			sf, err = catcore.ParseSeed(strings.NewReader(defaultSeed))
			if err != nil {
				return err
			}
		}

		masters, err := core.ApplySeed(cmd.Context(), sf)
		if err != nil {
			return fmt.Errorf("seeding: %w", err)
		}

		if seedJSON {
			return printJSON(masters, false)
		}

		for _, m := range masters {
			fmt.Println(ui.Success.Render("Created master ") + ui.ID.Render(m.ID))
			for _, c := range m.Cats {
				fmt.Printf("  %s %s (%s)\n", ui.ID.Render(c.ID), c.Name, c.Color)
			}
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(seedCmd)
}
