// Package cli implements the advent command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

// ValidFormats lists the supported output formats.
var ValidFormats = []string{"text", "json"}

// RootOptions holds global flags shared by all subcommands.
type RootOptions struct {
	Verbose bool
	Format  string
}

// NewRootCommand creates the root advent command with all subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "advent",
		Short: "Daily coding challenge workbench",
		Long: `advent solves, checks, and records daily coding challenges.

Each day's solution is a pure function from puzzle text to two answers.
Cases live in YAML manifests; solved runs can be appended to a SQLite
ledger for later comparison.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q (valid: text, json)", opts.Format))
			}
			configureLogging(opts.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&opts.Format, "format", "f", "text", "output format (text, json)")

	cmd.AddCommand(
		newRunCommand(opts),
		newListCommand(opts),
		newResultsCommand(opts),
		newCheckCommand(opts),
	)

	return cmd
}

// configureLogging installs the default slog handler on stderr so command
// output on stdout stays machine-readable.
func configureLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
