package manifest

import _ "embed"

// Starter is the manifest of the todo example, written by the init command.
//
//go:embed starter.yaml
var Starter []byte
