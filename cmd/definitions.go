package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sahidursuman/measured/internal/config"
	"github.com/sahidursuman/measured/internal/log"
	"github.com/sahidursuman/measured/internal/paths"
)

var definitionsCmd = &cobra.Command{
	Use:     "definitions",
	Aliases: []string{"defs"},
	Short:   "Manage the unit definition files listed in the config",
	// Skip catalog setup so a broken definition file can still be removed.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Validate(cfg)
	},
}

var definitionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured definition files and directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return formatter(cmd).FormatNames(cfg.Definitions)
	},
}

var definitionsAddCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Validate a definition file or directory and add it to the config",
	Long: `Validate a definition file or directory and add it to the config.

The path is stored as an absolute path. Comments and other settings in the
config file are preserved.

Examples:
  measured definitions add ./magic.yaml
  measured defs add ~/.config/measured/units`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(paths.Expand(args[0]))
		if err != nil {
			return err
		}
		kinds, err := loadDefinitions(path)
		if err != nil {
			return fmt.Errorf("loading definitions: %w", err)
		}

		updated, err := config.AddDefinition(configPath(), cfg.Definitions, path)
		if err != nil {
			return err
		}
		cfg.Definitions = updated
		log.Info(log.CatConfig, "definition added", "path", path, "kinds", len(kinds))

		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = k.Name()
		}
		return formatter(cmd).FormatNames(names)
	},
}

var definitionsRemoveCmd = &cobra.Command{
	Use:   "remove <path>",
	Short: "Remove a definition file or directory from the config",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !containsString(cfg.Definitions, path) {
			if abs, err := filepath.Abs(paths.Expand(path)); err == nil {
				path = abs
			}
		}

		updated, err := config.RemoveDefinition(configPath(), cfg.Definitions, path)
		if err != nil {
			return err
		}
		cfg.Definitions = updated
		log.Info(log.CatConfig, "definition removed", "path", path)
		return nil
	},
}

func init() {
	definitionsCmd.AddCommand(definitionsListCmd, definitionsAddCmd, definitionsRemoveCmd)
	rootCmd.AddCommand(definitionsCmd)
}

// configPath returns the config file in use, or the user config when none
// was loaded.
func configPath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	if cfgFile != "" {
		return cfgFile
	}
	return paths.UserConfigFile()
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
