// Package main provides the CLI entrypoint for dart-binding-generator.
//
// dart-binding-generator is a build-time Go codegen tool that:
//   - Reads a YAML manifest of the structs, enums and messages a host scanner found
//   - Projects every host type onto its Dart equivalent
//   - Renders argument and return marshalling expressions for FFI calls
//   - Generates the Dart side of the bindings
package main

import (
	"context"
	"fmt"
	"os"

	"dart-binding-generator/internal/commands"
)

func main() {
	if err := commands.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
