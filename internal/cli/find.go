package cli

import (
	"github.com/boostgo/fsbrowse"
	"github.com/boostgo/fsbrowse/internal/config"
	"github.com/spf13/cobra"
)

func newFindCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Search the tree under --root",
		Long: `Search the tree under --root by name pattern, extension or size,
or list executables and drivers in the Desktop, Documents and Downloads folders.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().IntVar(&a.limit, "limit", 0, "stop after this many matches (0 for no limit)")

	cmd.AddCommand(newFindPatternCommand(a))
	cmd.AddCommand(newFindExtCommand(a))
	cmd.AddCommand(newFindLargeCommand(a))
	cmd.AddCommand(newFindSystemCommand(a))

	return cmd
}

func newFindPatternCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pattern <glob>",
		Short: "Find files whose name matches a glob",
		Long: `Find files whose name matches a shell-style glob.
Supports * ? [abc] [a-z] and [!abc]. Matching ignores case unless --case-sensitive is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.searcher().FindByPattern(a.cfg.Root, args[0], a.searchOptions()...)
			if err != nil {
				return err
			}
			return a.presenter(cmd).Matches(result)
		},
		SilenceUsage: true,
	}

	cmd.Flags().Bool("case-sensitive", false, "match names case-sensitively")
	a.bind(cmd, config.KeyCaseSensitive, "case-sensitive")

	return cmd
}

func newFindExtCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "ext <ext[,ext...]>",
		Short:   "Find files by extension",
		Example: "  fsbrowse find ext txt,.PDF,log",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			extensions := fsbrowse.ParseExtensions(args[0])
			result, err := a.searcher().FindByExtensions(a.cfg.Root, extensions, a.searchOptions()...)
			if err != nil {
				return err
			}
			return a.presenter(cmd).Matches(result)
		},
		SilenceUsage: true,
	}
}

func newFindLargeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "large <minMB>",
		Short: "Find files of at least minMB megabytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minSize, err := fsbrowse.ParseMinSize(args[0])
			if err != nil {
				return err
			}

			result, err := a.searcher().FindLargeFiles(a.cfg.Root, minSize, a.searchOptions()...)
			if err != nil {
				return err
			}
			return a.presenter(cmd).Matches(result)
		},
		SilenceUsage: true,
	}
}

func newFindSystemCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "system",
		Short: "List .exe, .dll and .sys files in the user folders and --root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.searcher().FindSystemFiles(a.cfg.Root, a.searchOptions()...)
			if err != nil {
				return err
			}
			return a.presenter(cmd).Matches(result)
		},
		SilenceUsage: true,
	}
}
