// Package cli implements the fsbrowse command line
package cli

import (
	"log/slog"
	"os"

	"github.com/boostgo/fsbrowse"
	"github.com/boostgo/fsbrowse/internal/config"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// app carries the resolved configuration to the subcommands
type app struct {
	v       *viper.Viper
	cfgFile string
	limit   int

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand creates and returns the root cobra command for fsbrowse
func NewRootCommand() *cobra.Command {
	a := &app{v: config.New()}

	cmd := &cobra.Command{
		Use:   "fsbrowse",
		Short: "Search and inspect directory trees",
		Long: `fsbrowse searches a directory tree by name pattern, extension or size,
lists executables in the well-known user folders, and reports per-extension
and per-tree statistics.

Links and junctions are never followed, and directories that cannot be read
are reported as warnings instead of aborting the search.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.config/fsbrowse/fsbrowse.yaml)")
	flags.StringP("root", "C", ".", "directory to search")
	flags.String("format", config.FormatTable, "output format: table, json or yaml")
	flags.Bool("strict-reparse", false, "skip entries whose link status cannot be determined")
	flags.String("ignore-file", "", "gitignore-style file of paths to leave out")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.Bool("no-color", false, "disable colored output")

	a.bind(cmd, config.KeyRoot, "root")
	a.bind(cmd, config.KeyFormat, "format")
	a.bind(cmd, config.KeyStrictReparse, "strict-reparse")
	a.bind(cmd, config.KeyIgnoreFile, "ignore-file")
	a.bind(cmd, config.KeyLogLevel, "log-level")
	a.bind(cmd, config.KeyNoColor, "no-color")

	cmd.AddCommand(newFindCommand(a))
	cmd.AddCommand(newListCommand(a))
	cmd.AddCommand(newStatsCommand(a))
	cmd.AddCommand(newTypesCommand(a))
	cmd.AddCommand(newValidateCommand(a))

	return cmd
}

func (a *app) bind(cmd *cobra.Command, key, flag string) {
	f := cmd.PersistentFlags().Lookup(flag)
	if f == nil {
		f = cmd.Flags().Lookup(flag)
	}
	_ = a.v.BindPFlag(key, f)
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}

	if cfg.NoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	a.cfg = cfg
	a.logger = cfg.NewLogger(cmd.ErrOrStderr())
	a.logger.Debug("configuration loaded",
		slog.String("config_file", a.v.ConfigFileUsed()),
		slog.String("root", cfg.Root),
		slog.String("format", cfg.Format))

	return nil
}

func (a *app) searcher() *fsbrowse.Searcher {
	options := []fsbrowse.SearcherOption{fsbrowse.WithLogger(a.logger)}
	if a.cfg.StrictReparse {
		options = append(options, fsbrowse.WithStrictReparse())
	}

	return fsbrowse.NewSearcher(options...)
}

func (a *app) searchOptions() []fsbrowse.SearchOption {
	options := []fsbrowse.SearchOption{fsbrowse.WithCaseSensitive(a.cfg.CaseSensitive)}
	if a.cfg.IgnoreFile != "" {
		options = append(options, fsbrowse.WithIgnoreFile(a.cfg.IgnoreFile))
	}
	if a.limit > 0 {
		options = append(options, fsbrowse.WithLimitResults(a.limit))
	}

	return options
}

// dir returns the directory argument if given, else the configured root
func (a *app) dir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.cfg.Root
}

func (a *app) presenter(cmd *cobra.Command) *presenter {
	return newPresenter(cmd.OutOrStdout(), a.cfg.Format)
}
