package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sahidursuman/measured/internal/config"
	"github.com/sahidursuman/measured/internal/domain/value"
	"github.com/sahidursuman/measured/internal/log"
	"github.com/sahidursuman/measured/internal/measurable"
	"github.com/sahidursuman/measured/internal/paths"
	"github.com/sahidursuman/measured/internal/presentation"
	"github.com/sahidursuman/measured/internal/quantities"
	"github.com/sahidursuman/measured/internal/unitdef"
)

var (
	version    = "dev"
	cfgFile    string
	cfg        config.Config
	logCleanup func()
)

// CLI errors
var (
	ErrNoKind        = errors.New("no kind defines")
	ErrAmbiguousUnit = errors.New("ambiguous units")
)

var rootCmd = &cobra.Command{
	Use:   "measured",
	Short: "Convert and compare measured quantities",
	Long: `Convert and compare exact amounts between units of the same kind.

Weight and Length are built in. More kinds are declared in YAML unit
definition files listed under "definitions" in the config file.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/measured/config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "",
		"output format: text or json")
	rootCmd.PersistentFlags().Bool("debug", false,
		"write debug logs to log_file")
	rootCmd.PersistentFlags().Int32("precision", value.DefaultPrecision,
		"fractional digits kept when a converted amount does not terminate")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("precision", defaults.Precision)
	viper.SetDefault("definitions", defaults.Definitions)
	viper.SetDefault("output", defaults.Output)
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("log_file", defaults.LogFile)
	viper.SetDefault("log_level", defaults.LogLevel)
	viper.SetDefault("theme.highlight", defaults.Theme.Highlight)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("theme.error", defaults.Theme.Error)

	// Bind flags to viper; only flags set on the command line override
	// the config file.
	for _, name := range []string{"output", "debug", "precision"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	viper.SetEnvPrefix("MEASURED")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	userConfig := paths.UserConfigFile()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .measured/config.yaml (current directory)
		// 2. ~/.config/measured/config.yaml (user config)
		if _, err := os.Stat(paths.ProjectConfigFile); err == nil {
			viper.SetConfigFile(paths.ProjectConfigFile)
		} else {
			viper.AddConfigPath(paths.UserConfigDir())
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create the default user config
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && userConfig != "" {
			if writeErr := config.WriteDefaultConfig(userConfig); writeErr == nil {
				viper.SetConfigFile(userConfig)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	cfg = config.Config{}
	_ = viper.Unmarshal(&cfg)

	if cfg.Debug {
		if cleanup, err := log.Init(paths.Expand(cfg.LogFile)); err == nil {
			logCleanup = cleanup
			log.SetMinLevel(log.ParseLevel(cfg.LogLevel))
		}
	}
	log.Debug(log.CatConfig, "config loaded", "file", viper.ConfigFileUsed(), "precision", cfg.Precision)
}

// setup validates the config and builds the kind catalog from the built-in
// quantities and the configured definition files. The result becomes the
// process-wide catalog.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var opts []measurable.KindOption
	if cfg.Precision != value.DefaultPrecision {
		opts = append(opts, measurable.WithPrecision(cfg.Precision))
	}

	catalog := measurable.NewCatalog()
	if err := quantities.Register(catalog, opts...); err != nil {
		return err
	}

	for _, def := range cfg.Definitions {
		kinds, err := loadDefinitions(paths.Expand(def), opts...)
		if err != nil {
			return fmt.Errorf("loading definitions: %w", err)
		}
		for _, k := range kinds {
			if err := catalog.Register(k); err != nil {
				return fmt.Errorf("loading definitions from %s: %w", def, err)
			}
		}
	}

	measurable.SetDefault(catalog)
	log.Debug(log.CatCLI, "catalog ready", "command", cmd.Name(), "kinds", strings.Join(catalog.Kinds(), ","))
	return nil
}

// loadDefinitions loads a single file, or every definition file in a directory.
func loadDefinitions(path string, opts ...measurable.KindOption) ([]*measurable.Kind, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return unitdef.LoadDir(os.DirFS(path), ".", opts...)
	}
	return unitdef.LoadFile(os.DirFS(filepath.Dir(path)), filepath.Base(path), opts...)
}

// resolveKind picks the kind named by --kind, or the single kind that
// defines every one of units.
func resolveKind(kindName string, units ...string) (*measurable.Kind, error) {
	if kindName != "" {
		return measurable.Lookup(kindName)
	}

	var candidates []*measurable.Kind
	for _, k := range measurable.Default().FindByUnit(units[0]) {
		valid := true
		for _, u := range units[1:] {
			if !k.IsValidUnit(u) {
				valid = false
				break
			}
		}
		if valid {
			candidates = append(candidates, k)
		}
	}

	switch len(candidates) {
	case 0:
		return nil, fmt.Errorf("%w %s", ErrNoKind, quoteJoin(units))
	case 1:
		return candidates[0], nil
	default:
		names := make([]string, len(candidates))
		for i, k := range candidates {
			names[i] = k.Name()
		}
		return nil, fmt.Errorf("%w: %s defined by %s; pass --kind", ErrAmbiguousUnit, quoteJoin(units), strings.Join(names, ", "))
	}
}

// flagError points at -- when a negative amount was taken for a shorthand
// flag, e.g. "unknown shorthand flag: '5' in -5".
func flagError(cmd *cobra.Command, err error) error {
	const prefix = "unknown shorthand flag: '"
	if msg := err.Error(); strings.HasPrefix(msg, prefix) && len(msg) > len(prefix) && unicode.IsDigit(rune(msg[len(prefix)])) {
		return fmt.Errorf("%w (put -- before negative amounts: %s -- -5 ...)", err, cmd.CommandPath())
	}
	return err
}

func quoteJoin(units []string) string {
	seen := make(map[string]bool, len(units))
	quoted := make([]string, 0, len(units))
	for _, u := range units {
		if seen[u] {
			continue
		}
		seen[u] = true
		quoted = append(quoted, fmt.Sprintf("%q", u))
	}
	return strings.Join(quoted, " and ")
}

func formatter(cmd *cobra.Command) *presentation.Formatter {
	return presentation.NewFormatter(cmd.OutOrStdout(), cfg.Output, theme())
}

func theme() presentation.Theme {
	return presentation.Theme{
		Highlight: cfg.Theme.Highlight,
		Subtle:    cfg.Theme.Subtle,
		Error:     cfg.Theme.Error,
	}
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log.ErrorErr(log.CatCLI, "command failed", err)
		_ = presentation.NewFormatter(rootCmd.ErrOrStderr(), cfg.Output, theme()).FormatError(err)
	}
	if logCleanup != nil {
		logCleanup()
	}
	return err
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
