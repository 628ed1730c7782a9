package avro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mozilla/jsonschema-transpiler/avro"
	"github.com/mozilla/jsonschema-transpiler/normalize"
	"github.com/mozilla/jsonschema-transpiler/schema"
)

func normalizeOrFail(t *testing.T, tag *schema.Tag, opts schema.Options) *schema.Tag {
	t.Helper()

	out, err := normalize.Normalize(tag, opts)
	require.NoError(t, err)

	return out
}

func TestEncodeFlatRecord(t *testing.T) {
	t.Parallel()

	src := schema.NewObject()
	src.AddField("active", schema.NewAtom(schema.AtomBoolean), true)
	src.AddField("count", schema.NewAtom(schema.AtomInteger), false)

	tag := normalizeOrFail(t, src, schema.Options{})

	out, err := avro.Encode(tag)
	require.NoError(t, err)

	rec, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "record", rec["type"])
	assert.Equal(t, "root", rec["name"])

	fields, ok := rec["fields"].([]any)
	require.True(t, ok)
	require.Len(t, fields, 2)

	active := fields[0].(map[string]any)
	assert.Equal(t, "active", active["name"])
	assert.Equal(t, "boolean", active["type"])
	assert.NotContains(t, active, "default")

	count := fields[1].(map[string]any)
	assert.Equal(t, "count", count["name"])
	assert.Equal(t, []any{"null", "long"}, count["type"])
	assert.Nil(t, count["default"])
	assert.Contains(t, count, "default")
}

func TestEncodeNestedRecordNamespace(t *testing.T) {
	t.Parallel()

	inner := schema.NewObject()
	inner.AddField("city", schema.NewAtom(schema.AtomString), true)

	src := schema.NewObject()
	src.AddField("address", inner, true)

	tag := normalizeOrFail(t, src, schema.Options{})

	out, err := avro.Encode(tag)
	require.NoError(t, err)

	rec := out.(map[string]any)
	fields := rec["fields"].([]any)
	address := fields[0].(map[string]any)

	addressType := address["type"].(map[string]any)
	assert.Equal(t, "record", addressType["type"])
	assert.Equal(t, "address", addressType["name"])
	assert.Equal(t, "root", addressType["namespace"])
}

func TestEncodeDateAndDateTimeLogicalTypes(t *testing.T) {
	t.Parallel()

	src := schema.NewObject()
	src.AddField("day", schema.NewAtom(schema.AtomDate), true)
	src.AddField("seen_at", schema.NewAtom(schema.AtomDateTime), true)

	tag := normalizeOrFail(t, src, schema.Options{})

	out, err := avro.Encode(tag)
	require.NoError(t, err)

	fields := out.(map[string]any)["fields"].([]any)

	day := fields[0].(map[string]any)["type"].(map[string]any)
	assert.Equal(t, "int", day["type"])
	assert.Equal(t, "date", day["logicalType"])

	seenAt := fields[1].(map[string]any)["type"].(map[string]any)
	assert.Equal(t, "long", seenAt["type"])
	assert.Equal(t, "timestamp-micros", seenAt["logicalType"])
}

func TestEncodeMapAndArray(t *testing.T) {
	t.Parallel()

	src := schema.NewObject()
	src.AddField("tags", schema.NewMap(schema.NewAtom(schema.AtomString)), true)
	src.AddField("scores", schema.NewArray(schema.NewAtom(schema.AtomNumber)), true)

	tag := normalizeOrFail(t, src, schema.Options{})

	out, err := avro.Encode(tag)
	require.NoError(t, err)

	fields := out.(map[string]any)["fields"].([]any)

	scores := fields[0].(map[string]any)["type"].(map[string]any)
	assert.Equal(t, "array", scores["type"])
	assert.Equal(t, "double", scores["items"])

	tags := fields[1].(map[string]any)["type"].(map[string]any)
	assert.Equal(t, "map", tags["type"])
	assert.Equal(t, "string", tags["values"])
}

func TestEncodeTupleAsPositionalRecord(t *testing.T) {
	t.Parallel()

	opts := schema.Options{TupleStruct: true}

	src := schema.NewObject()
	src.AddField("row", schema.NewTuple([]*schema.Tag{
		schema.NewAtom(schema.AtomInteger),
		schema.NewAtom(schema.AtomString),
	}), true)

	tag := normalizeOrFail(t, src, opts)

	out, err := avro.Encode(tag)
	require.NoError(t, err)

	row := out.(map[string]any)["fields"].([]any)[0].(map[string]any)["type"].(map[string]any)
	assert.Equal(t, "record", row["type"])

	rowFields := row["fields"].([]any)
	require.Len(t, rowFields, 2)
	assert.Equal(t, "f0_", rowFields[0].(map[string]any)["name"])
	assert.Equal(t, "long", rowFields[0].(map[string]any)["type"])
	assert.Equal(t, "f1_", rowFields[1].(map[string]any)["name"])
}

func TestEncodeJSONFallbackRendersAsString(t *testing.T) {
	t.Parallel()

	src := schema.NewObject()
	src.AddField("raw", &schema.Tag{Kind: schema.KindAtom, Atom: schema.AtomJSON, Fallback: schema.FallbackEscalating}, false)

	opts := schema.Options{Resolve: schema.ResolveCast}

	tag := normalizeOrFail(t, src, opts)

	out, err := avro.Encode(tag)
	require.NoError(t, err)

	fields := out.(map[string]any)["fields"].([]any)
	raw := fields[0].(map[string]any)

	assert.Equal(t, []any{"null", "string"}, raw["type"])
}
