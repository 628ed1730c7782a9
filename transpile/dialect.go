package transpile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Dialect names the output schema format.
type Dialect string

const (
	DialectAvro     Dialect = "avro"
	DialectBigQuery Dialect = "bigquery"
)

// ParseDialect parses a CLI/context value into a [Dialect].
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(s) {
	case DialectAvro, DialectBigQuery:
		return Dialect(s), nil
	default:
		return "", fmt.Errorf("%w: unknown type %q", ErrInvalidOption, s)
	}
}

// InputFormat names the syntax the input document is written in. Both
// formats decode to the same Go value shapes (map[string]any, []any,
// string, bool, and numbers that preserve the integer/float distinction),
// so the rest of the pipeline is format-agnostic.
type InputFormat string

const (
	InputFormatJSON InputFormat = "json"
	InputFormatYAML InputFormat = "yaml"
	// InputFormatAuto defers to [ResolveInputFormat], which inspects the
	// input file name. It is only meaningful as a CLI flag default; a
	// Transpiler configured with it decodes its input as JSON.
	InputFormatAuto InputFormat = "auto"
)

// ParseInputFormat parses a CLI/context value into an [InputFormat].
func ParseInputFormat(s string) (InputFormat, error) {
	switch InputFormat(s) {
	case InputFormatJSON, InputFormatYAML, InputFormatAuto:
		return InputFormat(s), nil
	default:
		return "", fmt.Errorf("%w: unknown input format %q", ErrInvalidOption, s)
	}
}

// ResolveInputFormat turns [InputFormatAuto] into a concrete format by
// inspecting path's extension; ".yaml"/".yml" select YAML, everything else
// (including stdin, an empty path, or an unrecognized extension) selects
// JSON. A format other than InputFormatAuto passes through unchanged.
func ResolveInputFormat(format InputFormat, path string) InputFormat {
	if format != InputFormatAuto {
		return format
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		return InputFormatYAML
	}

	return InputFormatJSON
}
