package bigquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mozilla/jsonschema-transpiler/bigquery"
	"github.com/mozilla/jsonschema-transpiler/normalize"
	"github.com/mozilla/jsonschema-transpiler/schema"
)

func normalizeOrFail(t *testing.T, tag *schema.Tag, opts schema.Options) *schema.Tag {
	t.Helper()

	out, err := normalize.Normalize(tag, opts)
	require.NoError(t, err)

	return out
}

func TestEncodeScalarModes(t *testing.T) {
	t.Parallel()

	src := schema.NewObject()
	src.AddField("id", schema.NewAtom(schema.AtomInteger), true)
	src.AddField("nickname", schema.NewAtom(schema.AtomString), false)

	tag := normalizeOrFail(t, src, schema.Options{})

	fields, err := bigquery.Encode(tag)
	require.NoError(t, err)
	require.Len(t, fields, 2)

	assert.Equal(t, bigquery.Field{Name: "id", Type: "INT64", Mode: "REQUIRED"}, fields[0])
	assert.Equal(t, bigquery.Field{Name: "nickname", Type: "STRING", Mode: "NULLABLE"}, fields[1])
}

func TestEncodeNestedRecord(t *testing.T) {
	t.Parallel()

	inner := schema.NewObject()
	inner.AddField("city", schema.NewAtom(schema.AtomString), true)

	src := schema.NewObject()
	src.AddField("address", inner, false)

	tag := normalizeOrFail(t, src, schema.Options{})

	fields, err := bigquery.Encode(tag)
	require.NoError(t, err)

	address := fields[0]
	assert.Equal(t, "RECORD", address.Type)
	assert.Equal(t, "NULLABLE", address.Mode)
	require.Len(t, address.Fields, 1)
	assert.Equal(t, "city", address.Fields[0].Name)
	assert.Equal(t, "REQUIRED", address.Fields[0].Mode)
}

func TestEncodeMapAsRepeatedKeyValueRecord(t *testing.T) {
	t.Parallel()

	src := schema.NewObject()
	src.AddField("attrs", schema.NewMap(schema.NewAtom(schema.AtomString)), true)

	tag := normalizeOrFail(t, src, schema.Options{})

	fields, err := bigquery.Encode(tag)
	require.NoError(t, err)

	attrs := fields[0]
	assert.Equal(t, "RECORD", attrs.Type)
	assert.Equal(t, "REPEATED", attrs.Mode)
	require.Len(t, attrs.Fields, 2)
	assert.Equal(t, bigquery.Field{Name: "key", Type: "STRING", Mode: "REQUIRED"}, attrs.Fields[0])
	assert.Equal(t, bigquery.Field{Name: "value", Type: "STRING", Mode: "REQUIRED"}, attrs.Fields[1])
}

func TestEncodeMapWithoutValueEmitsKeyOnly(t *testing.T) {
	t.Parallel()

	src := schema.NewObject()
	src.AddField("attrs", schema.NewMap(nil), true)

	tag := normalizeOrFail(t, src, schema.Options{AllowMapsWithoutValue: true})

	fields, err := bigquery.Encode(tag)
	require.NoError(t, err)

	attrs := fields[0]
	assert.Equal(t, "RECORD", attrs.Type)
	assert.Equal(t, "REPEATED", attrs.Mode)
	require.Len(t, attrs.Fields, 1)
	assert.Equal(t, bigquery.Field{Name: "key", Type: "STRING", Mode: "REQUIRED"}, attrs.Fields[0])
}

func TestEncodeArrayOfScalarsIsRepeated(t *testing.T) {
	t.Parallel()

	src := schema.NewObject()
	src.AddField("scores", schema.NewArray(schema.NewAtom(schema.AtomNumber)), true)

	tag := normalizeOrFail(t, src, schema.Options{})

	fields, err := bigquery.Encode(tag)
	require.NoError(t, err)

	assert.Equal(t, bigquery.Field{Name: "scores", Type: "FLOAT64", Mode: "REPEATED"}, fields[0])
}

func TestEncodeArrayOfRecordsIsRepeatedRecord(t *testing.T) {
	t.Parallel()

	item := schema.NewObject()
	item.AddField("k", schema.NewAtom(schema.AtomString), true)

	src := schema.NewObject()
	src.AddField("rows", schema.NewArray(item), true)

	tag := normalizeOrFail(t, src, schema.Options{})

	fields, err := bigquery.Encode(tag)
	require.NoError(t, err)

	rows := fields[0]
	assert.Equal(t, "rows", rows.Name)
	assert.Equal(t, "RECORD", rows.Type)
	assert.Equal(t, "REPEATED", rows.Mode)
	require.Len(t, rows.Fields, 1)
	assert.Equal(t, "k", rows.Fields[0].Name)
}

func TestEncodeDateTimeAndJSON(t *testing.T) {
	t.Parallel()

	src := schema.NewObject()
	src.AddField("day", schema.NewAtom(schema.AtomDate), true)
	src.AddField("seen_at", schema.NewAtom(schema.AtomDateTime), true)
	src.AddField("raw", &schema.Tag{Kind: schema.KindAtom, Atom: schema.AtomJSON, Fallback: schema.FallbackEscalating}, false)

	tag := normalizeOrFail(t, src, schema.Options{Resolve: schema.ResolveCast})

	fields, err := bigquery.Encode(tag)
	require.NoError(t, err)

	assert.Equal(t, "DATE", fields[0].Type)
	assert.Equal(t, "JSON", fields[1].Type)
	assert.Equal(t, "NULLABLE", fields[1].Mode)
	assert.Equal(t, "TIMESTAMP", fields[2].Type)
}

func TestEncodeTupleAsRecord(t *testing.T) {
	t.Parallel()

	opts := schema.Options{TupleStruct: true}

	src := schema.NewObject()
	src.AddField("pair", schema.NewTuple([]*schema.Tag{
		schema.NewAtom(schema.AtomInteger),
		schema.NewAtom(schema.AtomString),
	}), true)

	tag := normalizeOrFail(t, src, opts)

	fields, err := bigquery.Encode(tag)
	require.NoError(t, err)

	pair := fields[0]
	assert.Equal(t, "RECORD", pair.Type)
	require.Len(t, pair.Fields, 2)
	assert.Equal(t, "f0_", pair.Fields[0].Name)
	assert.Equal(t, "INT64", pair.Fields[0].Type)
	assert.Equal(t, "f1_", pair.Fields[1].Name)
}

func TestEncodeRejectsNonObjectRoot(t *testing.T) {
	t.Parallel()

	_, err := bigquery.Encode(schema.NewAtom(schema.AtomString))
	require.ErrorIs(t, err, schema.ErrInvalidSchema)
}
