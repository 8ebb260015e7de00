// Package commands contains all CLI command definitions.
package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "dart-binding-generator",
		Short: "Generate Dart FFI bindings from a type manifest",
		Long: `Projects host types (primitives, enums, structs, nullable values and
collections) onto Dart and renders the marshalling expressions that carry
values across the FFI boundary.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")

	rootCmd.AddCommand(
		newRenderCmd(opts),
		newGenCmd(opts),
		newCheckCmd(opts),
		newInitCmd(opts),
	)

	return rootCmd
}

// logger returns a stderr logger when --verbose is set, a silent one otherwise.
func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	if !o.verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}
