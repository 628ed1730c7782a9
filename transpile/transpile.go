package transpile

import (
	"bytes"
	"encoding/json"
	"fmt"

	goccyyaml "github.com/goccy/go-yaml"

	"github.com/mozilla/jsonschema-transpiler/avro"
	"github.com/mozilla/jsonschema-transpiler/bigquery"
	"github.com/mozilla/jsonschema-transpiler/jsonschema"
	"github.com/mozilla/jsonschema-transpiler/normalize"
	"github.com/mozilla/jsonschema-transpiler/schema"
)

// Transpiler decodes a JSON Schema document, normalizes it, and renders it
// in the configured dialect. It holds no mutable state beyond its
// configuration and is safe for concurrent, repeated use.
type Transpiler struct {
	dialect     Dialect
	inputFormat InputFormat
	options     schema.Options
}

// Option configures a Transpiler.
type Option func(*Transpiler)

// NewTranspiler creates a Transpiler with the given options. The zero-value
// Transpiler decodes JSON and emits Avro with every schema.Options default.
func NewTranspiler(opts ...Option) *Transpiler {
	t := &Transpiler{dialect: DialectAvro, inputFormat: InputFormatJSON}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// WithDialect sets the output dialect.
func WithDialect(d Dialect) Option {
	return func(t *Transpiler) { t.dialect = d }
}

// WithInputFormat sets the input document syntax.
func WithInputFormat(f InputFormat) Option {
	return func(t *Transpiler) { t.inputFormat = f }
}

// WithOptions sets the schema.Options passed to the decoder and normalizer.
func WithOptions(o schema.Options) Option {
	return func(t *Transpiler) { t.options = o }
}

// Translate decodes data as a JSON Schema document, normalizes it, and
// renders the result in the configured dialect as pretty-printed JSON.
func (t *Transpiler) Translate(data []byte) (json.RawMessage, error) {
	raw, err := t.decodeInput(data)
	if err != nil {
		return nil, err
	}

	tag, err := jsonschema.Decode(raw, t.options)
	if err != nil {
		return nil, err
	}

	normalized, err := normalize.Normalize(tag, t.options)
	if err != nil {
		return nil, err
	}

	encoded, err := t.encode(normalized)
	if err != nil {
		return nil, err
	}

	out, err := json.MarshalIndent(encoded, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return out, nil
}

func (t *Transpiler) decodeInput(data []byte) (any, error) {
	switch t.inputFormat {
	case InputFormatYAML:
		var raw any

		if err := goccyyaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		return raw, nil

	default: // InputFormatJSON
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()

		var raw any

		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		return raw, nil
	}
}

func (t *Transpiler) encode(tag *schema.Tag) (any, error) {
	switch t.dialect {
	case DialectBigQuery:
		return bigquery.Encode(tag)
	default: // DialectAvro
		return avro.Encode(tag)
	}
}
