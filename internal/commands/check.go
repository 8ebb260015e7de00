package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dart-binding-generator/internal/diagnostic"
	"dart-binding-generator/internal/manifest"
)

type checkOptions struct {
	manifest string
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a manifest and report all diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.manifest, "manifest", "m", "", "Manifest file (required)")
	_ = cmd.MarkFlagRequired("manifest")

	return cmd
}

func runCheck(cmd *cobra.Command, root *rootOptions, opts *checkOptions) error {
	m, err := manifest.LoadFile(opts.manifest)
	if err != nil {
		return err
	}

	res, diags := m.Resolve()
	printDiagnostics(cmd, diags)

	if diags.HasErrors() {
		return fmt.Errorf("%s: %d error(s)", opts.manifest, len(diags.Errors))
	}

	root.logger(cmd).Debug("registry", "types", res.Registry.Names())
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d types)\n", opts.manifest, res.Registry.Len())

	return nil
}

func printDiagnostics(cmd *cobra.Command, diags diagnostic.Diagnostics) {
	out := cmd.ErrOrStderr()

	for _, d := range diags.Errors {
		fmt.Fprintf(out, "%s: %s\n", d.Severity, d)

		if len(d.Suggestions) > 0 {
			fmt.Fprintf(out, "  did you mean %s?\n", strings.Join(d.Suggestions, ", "))
		}
	}

	for _, d := range diags.Warnings {
		fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
	}
}
