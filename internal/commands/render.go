package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"dart-binding-generator/internal/category"
	"dart-binding-generator/internal/dart"
	"dart-binding-generator/internal/diagnostic"
	"dart-binding-generator/internal/manifest"
	"dart-binding-generator/internal/source"
)

type renderOptions struct {
	manifest string
	enums    []string
	structs  []string
	prims    []string
	raw      bool
	attr     bool
	slot     int
	snippet  string
	dump     bool
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <type>",
		Short: "Render a single type expression",
		Long: `Render the Dart type name, type attribute, argument expression and
return expression of a host type expression.`,
		Example: `  # Nullable collection of enums
  dart-binding-generator render "Option<Vec<Filter>>" --enum Filter

  # Raw FFI rendering with width attribute
  dart-binding-generator render u32 --raw --attr

  # Resolve custom types from a manifest
  dart-binding-generator render "Vec<&Todo>" --manifest todo.yaml --snippet store.todos`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.manifest, "manifest", "m", "", "Manifest to resolve custom types from")
	cmd.Flags().StringSliceVar(&opts.enums, "enum", nil, "Register enum type name(s)")
	cmd.Flags().StringSliceVar(&opts.structs, "struct", nil, "Register struct type name(s)")
	cmd.Flags().StringSliceVar(&opts.prims, "prim", nil, "Register primitive-like type name(s)")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Render enums as their integer code")
	cmd.Flags().BoolVar(&opts.attr, "attr", false, "Prefix integers with their dart:ffi width attribute")
	cmd.Flags().IntVar(&opts.slot, "slot", 0, "Argument slot used in the argument expression")
	cmd.Flags().StringVar(&opts.snippet, "snippet", "raw", "Raw value snippet used in the return expression")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "Dump the source and target descriptors")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootOptions, opts *renderOptions, expr string) error {
	log := root.logger(cmd)

	reg, err := buildRegistry(opts)
	if err != nil {
		return err
	}

	log.Debug("registry built", "types", reg.Len())

	src, err := source.Parse(expr, reg, diagnostic.Location{File: "<arg>"})
	if err != nil {
		return err
	}

	typ, err := dart.Project(src)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	renderOpts := dart.RenderOptions{Raw: opts.raw, IncludeTypeAttribute: opts.attr}

	attr, ok := typ.RenderTypeAttribute()
	if !ok {
		attr = "-"
	}

	fmt.Fprintf(out, "source:    %s\n", src)
	fmt.Fprintf(out, "type:      %s\n", typ.RenderWith(renderOpts))
	fmt.Fprintf(out, "attribute: %s\n", attr)
	fmt.Fprintf(out, "argument:  %s\n", exprOrError(typ.RenderFFIArg(opts.slot)))
	fmt.Fprintf(out, "return:    %s\n", exprOrError(typ.RenderToDart(opts.snippet)))

	if opts.dump {
		dumpDescriptors(out, src, typ)
	}

	return nil
}

func buildRegistry(opts *renderOptions) (*category.TypeInfoMap, error) {
	reg := category.MustTypeInfoMap()

	if opts.manifest != "" {
		m, err := manifest.LoadFile(opts.manifest)
		if err != nil {
			return nil, err
		}

		var diags diagnostic.Diagnostics

		reg, diags = m.Registry()
		if err := diags.Error(); err != nil {
			return nil, err
		}
	}

	for _, group := range []struct {
		names []string
		cat   category.Category
	}{
		{opts.enums, category.Enum},
		{opts.structs, category.Struct},
		{opts.prims, category.Prim},
	} {
		for _, name := range group.names {
			if err := reg.Add(category.TypeInfo{Name: name, Category: group.cat}); err != nil {
				return nil, err
			}
		}
	}

	return reg, nil
}

func exprOrError(expr string, err error) string {
	if err == nil {
		return expr
	}

	var genErr *diagnostic.Error
	if errors.As(err, &genErr) {
		return "error [" + genErr.Code + "] " + genErr.Error()
	}

	return "error " + err.Error()
}

func dumpDescriptors(out io.Writer, src source.Type, typ dart.Type) {
	cfg := spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true, DisableCapacities: true}

	fmt.Fprintln(out, "--- source descriptor")
	cfg.Fdump(out, src)
	fmt.Fprintln(out, "--- target descriptor")
	cfg.Fdump(out, typ)
}
