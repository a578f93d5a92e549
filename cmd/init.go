package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/whiskerworks/catnip/internal/catcore"
	"github.com/whiskerworks/catnip/internal/config"
	"github.com/whiskerworks/catnip/internal/ui"
)

var initPrefix string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new catnip project in the current directory",
	Long: `Creates a catnip.toml config file and an empty SQLite database in the
current directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := os.Getwd()
		if err != nil {
			return err
		}

		if _, err := os.Stat(dir + "/" + config.ConfigFile); err == nil {
			return fmt.Errorf("%s already exists", config.ConfigFile)
		}

		c := config.Default()
		if initPrefix != "" {
			c.Cats.Prefix = initPrefix
		}
		if err := c.Save(dir); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		// Open once so migrations create the database file.
		core, err := catcore.Open(dir, c)
		if err != nil {
			return fmt.Errorf("creating database: %w", err)
		}
		if err := core.Close(); err != nil {
			return err
		}

		fmt.Println(ui.Success.Render("Initialized catnip project in ") + dir)
		fmt.Println(ui.Muted.Render("Next: seed some cats with 'catnip seed', then 'catnip serve'"))
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initPrefix, "prefix", "", "ID prefix for new records")
	rootCmd.AddCommand(initCmd)
}
