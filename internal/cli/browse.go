package cli

import (
	"github.com/boostgo/fsbrowse"
	"github.com/spf13/cobra"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [dir]",
		Short: "List the immediate entries of a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.dir(args)
			entries, err := fsbrowse.ListDirectory(dir)
			if err != nil {
				return err
			}
			return a.presenter(cmd).Entries(dir, entries)
		},
		SilenceUsage: true,
	}
}

func newStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [dir]",
		Short: "Count files, folders and bytes under a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.dir(args)
			if _, err := fsbrowse.ListDirectory(dir); err != nil {
				return err
			}
			return a.presenter(cmd).Stats(a.searcher().DirectoryStats(dir))
		},
		SilenceUsage: true,
	}
}

func newTypesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types [dir]",
		Short: "Break a directory tree down by file extension",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.searcher().Histogram(a.dir(args))
			if err != nil {
				return err
			}
			return a.presenter(cmd).Types(stats)
		},
		SilenceUsage: true,
	}
}

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>",
		Short: "Check a path against the Windows naming rules",
		Long: `Check a path against the Windows naming rules without touching the filesystem.

Exit code: 0 if valid, 1 otherwise`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := fsbrowse.Validate(args[0])
			if err := a.presenter(cmd).Validation(args[0], result); err != nil {
				return err
			}
			if !result.Valid {
				return fsbrowse.ValidatePath(args[0])
			}
			return nil
		},
		SilenceUsage: true,
	}
}
