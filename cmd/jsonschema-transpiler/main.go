// Package main provides the CLI entry point for jsonschema-transpiler, a
// tool that renders a JSON Schema document as an Avro or BigQuery schema.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	cliLog "github.com/mozilla/jsonschema-transpiler/log"
	"github.com/mozilla/jsonschema-transpiler/schema"
	"github.com/mozilla/jsonschema-transpiler/transpile"
	"github.com/mozilla/jsonschema-transpiler/version"
)

func main() {
	cfg := transpile.NewConfig()
	logCfg := cliLog.NewConfig()

	var inputPath string

	rootCmd := &cobra.Command{
		Use:   "jsonschema-transpiler [flags] [file]",
		Short: "Render a JSON Schema document as an Avro or BigQuery schema",
		Long: `jsonschema-transpiler reads a JSON Schema document (JSON or YAML) and
renders it as either an Avro schema or a BigQuery table schema, collapsing
unions, propagating nullability, and applying a configurable strategy for
sub-schemas the target dialect cannot express.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				inputPath = args[0]
			}

			return run(cfg, logCfg, inputPath)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())

	if err := cfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(exitCode(err))
	}
}

func run(cfg *transpile.Config, logCfg *cliLog.Config, inputPath string) error {
	handler, err := logCfg.NewHandler(os.Stderr)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler))

	var data []byte
	var readErr error

	if inputPath == "" || inputPath == "-" {
		data, readErr = io.ReadAll(os.Stdin)
		if readErr != nil {
			return fmt.Errorf("%w: stdin: %w", transpile.ErrReadInput, readErr)
		}
	} else {
		data, readErr = os.ReadFile(inputPath)
		if readErr != nil {
			return fmt.Errorf("%w: %w", transpile.ErrReadInput, readErr)
		}
	}

	resolvedFormat, err := transpile.ParseInputFormat(cfg.InputFormat)
	if err != nil {
		return err
	}

	cfg.InputFormat = string(transpile.ResolveInputFormat(resolvedFormat, inputPath))

	tp, err := cfg.NewTranspiler()
	if err != nil {
		return err
	}

	slog.Debug("decoding schema", "input", inputPath, "format", cfg.InputFormat, "dialect", cfg.Type)

	out, err := tp.Translate(data)
	if err != nil {
		return err
	}

	out = append(out, '\n')

	if cfg.Output == "" || cfg.Output == "-" {
		if _, err := os.Stdout.Write(out); err != nil {
			return fmt.Errorf("%w: %w", transpile.ErrWriteOutput, err)
		}
	} else if err := os.WriteFile(cfg.Output, out, 0o644); err != nil {
		return fmt.Errorf("%w: %w", transpile.ErrWriteOutput, err)
	}

	return nil
}

// exitCode maps an error to a process exit status: 2 for a malformed or
// unrepresentable schema, 1 for everything else (bad flags, I/O failure).
func exitCode(err error) int {
	switch {
	case errors.Is(err, schema.ErrInvalidSchema), errors.Is(err, schema.ErrIncompatible):
		return 2
	default:
		return 1
	}
}
