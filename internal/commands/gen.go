package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"dart-binding-generator/internal/gen"
	"dart-binding-generator/internal/manifest"
)

type genOptions struct {
	manifest     string
	output       string
	ffiImport    string
	noSignatures bool
}

func newGenCmd(root *rootOptions) *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:     "gen",
		Short:   "Generate the Dart library of a manifest",
		Example: `  dart-binding-generator gen --manifest todo.yaml --output lib/generated`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.manifest, "manifest", "m", "", "Manifest file (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "lib/generated", "Output directory")
	cmd.Flags().StringVar(&opts.ffiImport, "ffi-import", gen.DefaultGeneratorConfig().FFIImport, "Dart import providing the native symbols")
	cmd.Flags().BoolVar(&opts.noSignatures, "no-signatures", false, "Omit typedefs of the raw native signatures")
	_ = cmd.MarkFlagRequired("manifest")

	return cmd
}

func runGen(cmd *cobra.Command, root *rootOptions, opts *genOptions) error {
	log := root.logger(cmd)

	m, err := manifest.LoadFile(opts.manifest)
	if err != nil {
		return err
	}

	res, diags := m.Resolve()
	printDiagnostics(cmd, diags)

	if err := diags.Error(); err != nil {
		return fmt.Errorf("resolving %s: %d error(s)", opts.manifest, len(diags.Errors))
	}

	log.Debug("manifest resolved", "structs", len(res.Structs), "messages", len(res.Messages), "exports", len(res.Exports))

	config := gen.DefaultGeneratorConfig()
	config.FFIImport = opts.ffiImport
	config.IncludeSignatures = !opts.noSignatures

	files, err := gen.NewGenerator(config).Generate(res)
	if err != nil {
		return err
	}

	paths, err := gen.WriteFiles(files, opts.output)
	if err != nil {
		return err
	}

	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
	}

	return nil
}
