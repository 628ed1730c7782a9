// Package transpile wires the decode -> normalize -> encode pipeline into a
// single entry point and provides the CLI-facing [Config]/[Flags] pair used
// by cmd/jsonschema-transpiler.
package transpile
