package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"dart-binding-generator/internal/manifest"
)

type initOptions struct {
	path  string
	force bool
}

func newInitCmd(root *rootOptions) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.path, "path", "p", "bindings.yaml", "Manifest path")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing manifest")

	return cmd
}

func runInit(cmd *cobra.Command, root *rootOptions, opts *initOptions) error {
	if _, err := os.Stat(opts.path); err == nil && !opts.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", opts.path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", opts.path, err)
	}

	m, err := manifest.Parse(manifest.Starter)
	if err != nil {
		return err
	}

	if err := manifest.WriteFile(m, opts.path); err != nil {
		return err
	}

	root.logger(cmd).Debug("starter manifest written", "library", m.Library)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.path)

	return nil
}
