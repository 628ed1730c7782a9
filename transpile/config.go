package transpile

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mozilla/jsonschema-transpiler/schema"
)

// Flags holds CLI flag names for transpile configuration, allowing callers
// to customize flag names while keeping sensible defaults.
type Flags struct {
	Type                  string
	InputFormat           string
	Output                string
	Resolve               string
	NormalizeCase         string
	ForceNullable         string
	TupleStruct           string
	AllowMapsWithoutValue string
	JSONObjectPathRegex   string
}

// Config holds CLI flag values for transpile configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewTranspiler] to create a
// [Transpiler].
type Config struct {
	Flags Flags

	Type                  string
	InputFormat           string
	Output                string
	Resolve               string
	JSONObjectPathRegex   string
	NormalizeCase         bool
	ForceNullable         bool
	TupleStruct           bool
	AllowMapsWithoutValue bool
}

// NewConfig returns a new [Config] with default flag names and values.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			Type:                  "type",
			InputFormat:           "input-format",
			Output:                "output",
			Resolve:               "resolve",
			NormalizeCase:         "normalize-case",
			ForceNullable:         "force-nullable",
			TupleStruct:           "tuple-struct",
			AllowMapsWithoutValue: "allow-maps-without-value",
			JSONObjectPathRegex:   "json-object-path-regex",
		},
		Type:        string(DialectAvro),
		InputFormat: string(InputFormatAuto),
		Output:      "-",
		Resolve:     schema.ResolveCast.String(),
	}
}

// RegisterFlags adds transpile flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Type, c.Flags.Type, "t", c.Type,
		"output schema dialect: avro or bigquery")
	flags.StringVar(&c.InputFormat, c.Flags.InputFormat, c.InputFormat,
		"input document syntax: auto, json, or yaml (auto detects by file extension)")
	flags.StringVarP(&c.Output, c.Flags.Output, "o", c.Output,
		"output file path (- for stdout)")
	flags.StringVar(&c.Resolve, c.Flags.Resolve, c.Resolve,
		"strategy for incompatible sub-schemas: cast, drop, or panic")
	flags.BoolVar(&c.NormalizeCase, c.Flags.NormalizeCase, false,
		"rewrite object field names to snake_case")
	flags.BoolVar(&c.ForceNullable, c.Flags.ForceNullable, false,
		"mark every non-root tag nullable")
	flags.BoolVar(&c.TupleStruct, c.Flags.TupleStruct, false,
		"render a fixed-length array's items as a positional record instead of a union")
	flags.BoolVar(&c.AllowMapsWithoutValue, c.Flags.AllowMapsWithoutValue, false,
		"allow additionalProperties without an explicit value schema to decode as a map")
	flags.StringVar(&c.JSONObjectPathRegex, c.Flags.JSONObjectPathRegex, "",
		"dotted path regex matching sub-schemas to render as opaque JSON")
}

// RegisterCompletions registers shell completions for transpile flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Type,
		cobra.FixedCompletions([]string{string(DialectAvro), string(DialectBigQuery)}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Type, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.InputFormat,
		cobra.FixedCompletions([]string{string(InputFormatAuto), string(InputFormatJSON), string(InputFormatYAML)}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.InputFormat, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Resolve,
		cobra.FixedCompletions([]string{"cast", "drop", "panic"}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Resolve, err)
	}

	return nil
}

// NewTranspiler builds a [Transpiler] from c, validating the dialect, input
// format, resolve strategy, and path regex.
func (c *Config) NewTranspiler() (*Transpiler, error) {
	dialect, err := ParseDialect(c.Type)
	if err != nil {
		return nil, err
	}

	inputFormat, err := ParseInputFormat(c.InputFormat)
	if err != nil {
		return nil, err
	}

	resolve, err := schema.ParseResolveStrategy(c.Resolve)
	if err != nil {
		return nil, err
	}

	opts, err := schema.NewOptions(resolve, c.NormalizeCase, c.ForceNullable, c.TupleStruct, c.AllowMapsWithoutValue, c.JSONObjectPathRegex)
	if err != nil {
		return nil, err
	}

	return NewTranspiler(
		WithDialect(dialect),
		WithInputFormat(inputFormat),
		WithOptions(opts),
	), nil
}
