package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/whiskerworks/catnip/internal/catcore"
	"github.com/whiskerworks/catnip/internal/config"
)

var (
	core        *catcore.Core
	cfg         *config.Config
	projectRoot string

	rootPath string
)

var rootCmd = &cobra.Command{
	Use:   "catnip",
	Short: "A GraphQL registry of cats and their masters",
	Long: `Catnip is a small GraphQL service over a relational datamodel of
cats and masters. Cats belong to a master and may name another cat as
their favorite brother. The API exposes masters as SpecialMaster: the
id plus the derived catBrothers list.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip project lookup for init command
		if cmd.Name() == "init" {
			return nil
		}

		var err error
		if rootPath != "" {
			projectRoot = rootPath
			if info, statErr := os.Stat(projectRoot); statErr != nil || !info.IsDir() {
				return fmt.Errorf("project path does not exist or is not a directory: %s", projectRoot)
			}
		} else {
			projectRoot, err = config.FindRoot()
			if err != nil {
				return fmt.Errorf("no catnip.toml found (run 'catnip init' to create a project)")
			}
		}

		cfg, err = config.Load(projectRoot)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		core, err = catcore.Open(projectRoot, cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if core != nil {
			return core.Close()
		}
		return nil
	},
}

// printJSON renders a value as colored, indented JSON on stdout.
// With raw set, it prints compact JSON instead.
func printJSON(v any, raw bool) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if raw {
		fmt.Println(string(data))
		return nil
	}
	fmt.Println(string(pretty.Color(pretty.Pretty(data), nil)))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootPath, "path", "", "Path to the project directory (overrides auto-detection)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
