package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mozilla/jsonschema-transpiler/normalize"
	"github.com/mozilla/jsonschema-transpiler/schema"
)

func mustOptions(t *testing.T, resolve schema.ResolveStrategy, normalizeCase, forceNullable, tupleStruct, allowMapsWithoutValue bool, pathRegex string) schema.Options {
	t.Helper()

	opts, err := schema.NewOptions(resolve, normalizeCase, forceNullable, tupleStruct, allowMapsWithoutValue, pathRegex)
	require.NoError(t, err)

	return opts
}

func TestNormalizeRootNameAndNamespace(t *testing.T) {
	t.Parallel()

	tag := schema.NewObject()
	tag.AddField("foo", schema.NewAtom(schema.AtomBoolean), false)

	out, err := normalize.Normalize(tag, schema.Options{})
	require.NoError(t, err)

	assert.Equal(t, "root", out.Name)
	assert.Empty(t, out.Namespace)
	assert.Equal(t, "root", out.Fields["foo"].Namespace)
	assert.Equal(t, "foo", out.Fields["foo"].Name)
}

func TestNormalizeNestedNamespaceIsDotted(t *testing.T) {
	t.Parallel()

	inner := schema.NewObject()
	inner.AddField("bar", schema.NewAtom(schema.AtomString), false)

	outer := schema.NewObject()
	outer.AddField("foo", inner, false)

	out, err := normalize.Normalize(outer, schema.Options{})
	require.NoError(t, err)

	fooTag := out.Fields["foo"]
	assert.Equal(t, "root", fooTag.Namespace)
	assert.Equal(t, "root.foo", fooTag.Namespace+"."+fooTag.Name)
	assert.Equal(t, "root.foo", fooTag.Fields["bar"].Namespace)
}

func TestNormalizeRequiredAndOptionalNullability(t *testing.T) {
	t.Parallel()

	tag := schema.NewObject()
	tag.AddField("req", schema.NewAtom(schema.AtomBoolean), true)
	tag.AddField("opt", schema.NewAtom(schema.AtomBoolean), false)

	out, err := normalize.Normalize(tag, schema.Options{})
	require.NoError(t, err)

	assert.False(t, out.Fields["req"].Nullable)
	assert.True(t, out.Fields["opt"].Nullable)
}

func TestNormalizeForceNullableAppliesBelowRootOnly(t *testing.T) {
	t.Parallel()

	tag := schema.NewObject()
	tag.AddField("req", schema.NewAtom(schema.AtomBoolean), true)

	opts := mustOptions(t, schema.ResolveCast, false, true, false, false, "")

	out, err := normalize.Normalize(tag, opts)
	require.NoError(t, err)

	assert.False(t, out.Nullable, "root itself is not subject to force_nullable")
	assert.True(t, out.Fields["req"].Nullable)
}

func TestNormalizeUnionCollapseAbsorbsNull(t *testing.T) {
	t.Parallel()

	union := schema.NewUnion([]*schema.Tag{schema.NewAtom(schema.AtomString), schema.NewNull()})
	tag := schema.NewObject()
	tag.AddField("maybe", union, true)

	out, err := normalize.Normalize(tag, schema.Options{})
	require.NoError(t, err)

	field := out.Fields["maybe"]
	require.Equal(t, schema.KindAtom, field.Kind)
	assert.Equal(t, schema.AtomString, field.Atom)
	assert.True(t, field.Nullable, "null absorption marks the field nullable even though it was required")
}

func TestNormalizeIntegerNumberUnionWidens(t *testing.T) {
	t.Parallel()

	union := schema.NewUnion([]*schema.Tag{schema.NewAtom(schema.AtomInteger), schema.NewAtom(schema.AtomNumber)})
	tag := schema.NewObject()
	tag.AddField("n", union, false)

	out, err := normalize.Normalize(tag, schema.Options{})
	require.NoError(t, err)

	assert.Equal(t, schema.AtomNumber, out.Fields["n"].Atom)
}

func TestNormalizeCaseNormalizationAndCollision(t *testing.T) {
	t.Parallel()

	tag := schema.NewObject()
	tag.AddField("fooBar", schema.NewAtom(schema.AtomBoolean), false)
	tag.AddField("foo_bar", schema.NewAtom(schema.AtomBoolean), false)

	opts := mustOptions(t, schema.ResolveCast, true, false, false, false, "")

	out, err := normalize.Normalize(tag, opts)
	require.NoError(t, err)

	assert.Contains(t, out.Fields, "foo_bar")
	assert.Contains(t, out.Fields, "foo_bar_1")
	assert.Equal(t, []string{"foo_bar", "foo_bar_1"}, out.FieldOrder)
}

func TestNormalizeMapWithoutValueDefaultsToCastJSON(t *testing.T) {
	t.Parallel()

	tag := schema.NewObject()
	tag.AddField("extra", schema.NewMap(nil), false)

	out, err := normalize.Normalize(tag, schema.Options{})
	require.NoError(t, err)

	field := out.Fields["extra"]
	require.Equal(t, schema.KindAtom, field.Kind)
	assert.Equal(t, schema.AtomJSON, field.Atom)
}

func TestNormalizeMapWithoutValueAllowed(t *testing.T) {
	t.Parallel()

	tag := schema.NewObject()
	tag.AddField("extra", schema.NewMap(nil), false)

	opts := mustOptions(t, schema.ResolveCast, false, false, false, true, "")

	out, err := normalize.Normalize(tag, opts)
	require.NoError(t, err)

	field := out.Fields["extra"]
	require.Equal(t, schema.KindMap, field.Kind)
	assert.Nil(t, field.Value)
	assert.Equal(t, "key", field.Key.Name)
}

func TestNormalizeResolveDropOmitsField(t *testing.T) {
	t.Parallel()

	escalating := &schema.Tag{Kind: schema.KindAtom, Atom: schema.AtomJSON, Fallback: schema.FallbackEscalating}

	tag := schema.NewObject()
	tag.AddField("kept", schema.NewAtom(schema.AtomBoolean), false)
	tag.AddField("dropped", escalating, false)

	opts := mustOptions(t, schema.ResolveDrop, false, false, false, false, "")

	out, err := normalize.Normalize(tag, opts)
	require.NoError(t, err)

	assert.Contains(t, out.Fields, "kept")
	assert.NotContains(t, out.Fields, "dropped")
	assert.Equal(t, []string{"kept"}, out.FieldOrder)
}

func TestNormalizeResolvePanicErrors(t *testing.T) {
	t.Parallel()

	escalating := &schema.Tag{Kind: schema.KindAtom, Atom: schema.AtomJSON, Fallback: schema.FallbackEscalating}

	tag := schema.NewObject()
	tag.AddField("bad", escalating, false)

	opts := mustOptions(t, schema.ResolvePanic, false, false, false, false, "")

	_, err := normalize.Normalize(tag, opts)
	require.ErrorIs(t, err, schema.ErrIncompatible)
}

func TestNormalizeRootDropYieldsEmptyObject(t *testing.T) {
	t.Parallel()

	escalating := &schema.Tag{Kind: schema.KindAtom, Atom: schema.AtomJSON, Fallback: schema.FallbackEscalating}

	opts := mustOptions(t, schema.ResolveDrop, false, false, false, false, "")

	out, err := normalize.Normalize(escalating, opts)
	require.NoError(t, err)

	require.Equal(t, schema.KindObject, out.Kind)
	assert.Empty(t, out.Fields)
}

func TestNormalizePathRegexEscapesToJSONRegardlessOfStrategy(t *testing.T) {
	t.Parallel()

	escalating := &schema.Tag{Kind: schema.KindAtom, Atom: schema.AtomJSON, Fallback: schema.FallbackEscalating}

	tag := schema.NewObject()
	tag.AddField("raw", escalating, false)

	opts := mustOptions(t, schema.ResolvePanic, false, false, false, false, `^root\.raw$`)

	out, err := normalize.Normalize(tag, opts)
	require.NoError(t, err)

	field := out.Fields["raw"]
	require.Equal(t, schema.KindAtom, field.Kind)
	assert.Equal(t, schema.AtomJSON, field.Atom)
}

func TestNormalizeBenignFallbackDefaultsToString(t *testing.T) {
	t.Parallel()

	benign := &schema.Tag{Kind: schema.KindAtom, Atom: schema.AtomJSON, Fallback: schema.FallbackBenign}

	tag := schema.NewObject()
	tag.AddField("empty", benign, false)

	opts := mustOptions(t, schema.ResolvePanic, false, false, false, false, "")

	out, err := normalize.Normalize(tag, opts)
	require.NoError(t, err)

	field := out.Fields["empty"]
	assert.Equal(t, schema.AtomString, field.Atom, "benign fallback never escalates through the resolve strategy")
}

func TestNormalizeTupleItemsNamedPositionally(t *testing.T) {
	t.Parallel()

	opts := mustOptions(t, schema.ResolveCast, false, false, true, false, "")

	tuple := schema.NewTuple([]*schema.Tag{schema.NewAtom(schema.AtomInteger), schema.NewAtom(schema.AtomString)})
	tag := schema.NewObject()
	tag.AddField("row", tuple, false)

	out, err := normalize.Normalize(tag, opts)
	require.NoError(t, err)

	row := out.Fields["row"]
	require.Len(t, row.TupleItems, 2)
	assert.Equal(t, "f0_", row.TupleItems[0].Name)
	assert.Equal(t, "f1_", row.TupleItems[1].Name)
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	tag := schema.NewObject()
	tag.AddField("fooBar", schema.NewUnion([]*schema.Tag{schema.NewAtom(schema.AtomInteger), schema.NewNull()}), false)

	opts := mustOptions(t, schema.ResolveCast, true, false, false, false, "")

	once, err := normalize.Normalize(tag, opts)
	require.NoError(t, err)

	twice, err := normalize.Normalize(once, opts)
	require.NoError(t, err)

	assert.Equal(t, once.Fields["foo_bar"].Atom, twice.Fields["foo_bar"].Atom)
	assert.Equal(t, once.Fields["foo_bar"].Nullable, twice.Fields["foo_bar"].Nullable)
	assert.Equal(t, once.Fields["foo_bar"].Namespace, twice.Fields["foo_bar"].Namespace)
}

func TestNormalizeJoinedObjectFieldOrderIsLexicographic(t *testing.T) {
	t.Parallel()

	zebra := schema.NewObject()
	zebra.AddField("zebra", schema.NewAtom(schema.AtomBoolean), true)

	apple := schema.NewObject()
	apple.AddField("apple", schema.NewAtom(schema.AtomBoolean), true)

	tag := schema.NewUnion([]*schema.Tag{zebra, apple})
	root := schema.NewObject()
	root.AddField("animals", tag, false)

	out, err := normalize.Normalize(root, schema.Options{})
	require.NoError(t, err)

	animals := out.Fields["animals"]
	require.Equal(t, schema.KindObject, animals.Kind)
	assert.Equal(t, []string{"apple", "zebra"}, animals.FieldOrder)
}

func TestNormalizeArrayItemsNamespaced(t *testing.T) {
	t.Parallel()

	arr := schema.NewArray(schema.NewObject())
	tag := schema.NewObject()
	tag.AddField("items_field", arr, false)

	out, err := normalize.Normalize(tag, schema.Options{})
	require.NoError(t, err)

	items := out.Fields["items_field"].Items
	require.NotNil(t, items)
	assert.Equal(t, "items", items.Name)
	assert.Equal(t, "root.items_field", items.Namespace)
}
