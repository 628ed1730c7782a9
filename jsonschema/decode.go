package jsonschema

import (
	"fmt"
	"sort"

	"github.com/mozilla/jsonschema-transpiler/schema"
)

// Decode converts a generic JSON value (as produced by encoding/json with
// UseNumber, or an equivalent YAML decode) into a [schema.Tag]. The root
// value must be a JSON object; any other shape fails with
// [schema.ErrInvalidSchema].
func Decode(raw any, opts schema.Options) (*schema.Tag, error) {
	root, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: root schema must be a JSON object, got %T", schema.ErrInvalidSchema, raw)
	}

	return decodeObjectSchema(root, opts)
}

// decodeNode decodes a sub-schema value, which per the JSON Schema grammar
// may be a boolean schema ("true"/"false") or a schema object.
func decodeNode(raw any, opts schema.Options) (*schema.Tag, error) {
	switch v := raw.(type) {
	case bool:
		if v {
			return benignOpaque(), nil
		}

		return escalatingOpaque(), nil

	case map[string]any:
		return decodeObjectSchema(v, opts)

	case nil:
		return benignOpaque(), nil

	default:
		return nil, fmt.Errorf("%w: schema node must be an object or boolean, got %T", schema.ErrInvalidSchema, raw)
	}
}

// benignOpaque returns a candidate for a structurally-empty-but-valid
// construct ("{}" or a bare "type":"object"). It never escalates through
// the resolve strategy; the normalizer resolves it to Atom(JSON) on a path
// match and Atom(String) otherwise.
func benignOpaque() *schema.Tag {
	return &schema.Tag{Kind: schema.KindAtom, Atom: schema.AtomJSON, Fallback: schema.FallbackBenign}
}

// escalatingOpaque returns a candidate for a construct this engine does
// not recognize at all. The normalizer resolves it to Atom(JSON) on a path
// match, otherwise applying the configured resolve strategy.
func escalatingOpaque() *schema.Tag {
	return &schema.Tag{Kind: schema.KindAtom, Atom: schema.AtomJSON, Fallback: schema.FallbackEscalating}
}

// decodeObjectSchema decodes a single JSON Schema object node (never a
// boolean), dispatching on recognized keyword families in the priority
// order: enum, oneOf/anyOf/allOf, "type", implicit object/array/map shape,
// then empty/unknown.
func decodeObjectSchema(m map[string]any, opts schema.Options) (*schema.Tag, error) {
	if enumVal, ok := m["enum"].([]any); ok {
		return decodeEnum(enumVal), nil
	}

	if variants, ok := collectUnionKeywords(m); ok {
		return decodeUnion(variants, opts)
	}

	if typeVal, ok := m["type"]; ok {
		return decodeTyped(typeVal, m, opts)
	}

	if hasObjectShape(m) {
		return decodeObject(m, opts)
	}

	if hasArrayShape(m) {
		return decodeArray(m, opts)
	}

	if len(m) == 0 {
		return benignOpaque(), nil
	}

	return escalatingOpaque(), nil
}

// collectUnionKeywords gathers the sub-schema lists of oneOf, anyOf, and
// allOf (any or all of which may be present) into one slice of raw
// sub-schema values. ok is false when none of the three keywords appear.
func collectUnionKeywords(m map[string]any) ([]any, bool) {
	var variants []any

	found := false

	for _, key := range []string{"oneOf", "anyOf", "allOf"} {
		if list, ok := m[key].([]any); ok {
			variants = append(variants, list...)
			found = true
		}
	}

	return variants, found
}

// decodeUnion decodes each variant and wraps the result in a KindUnion tag
// for the normalizer's collapse pass to fold.
func decodeUnion(rawVariants []any, opts schema.Options) (*schema.Tag, error) {
	variants := make([]*schema.Tag, 0, len(rawVariants))

	for _, rv := range rawVariants {
		v, err := decodeNode(rv, opts)
		if err != nil {
			return nil, err
		}

		variants = append(variants, v)
	}

	return schema.NewUnion(variants), nil
}

// decodeTyped dispatches on the "type" keyword, which may be a single
// type name or an array of type names (multi-valued type, decoded as a
// union over the same keyword set).
func decodeTyped(typeVal any, m map[string]any, opts schema.Options) (*schema.Tag, error) {
	switch t := typeVal.(type) {
	case string:
		return decodeByType(t, m, opts)

	case []any:
		variants := make([]*schema.Tag, 0, len(t))

		for _, te := range t {
			name, ok := te.(string)
			if !ok {
				return nil, fmt.Errorf("%w: type array element must be a string, got %T", schema.ErrInvalidSchema, te)
			}

			v, err := decodeByType(name, m, opts)
			if err != nil {
				return nil, err
			}

			variants = append(variants, v)
		}

		return schema.NewUnion(variants), nil

	default:
		return nil, fmt.Errorf("%w: \"type\" must be a string or array of strings, got %T", schema.ErrInvalidSchema, typeVal)
	}
}

// decodeByType decodes a single recognized type name, consulting the rest
// of the keywords in m for types (string, object, array) that need them.
func decodeByType(t string, m map[string]any, opts schema.Options) (*schema.Tag, error) {
	switch t {
	case "boolean":
		return schema.NewAtom(schema.AtomBoolean), nil
	case "integer":
		return schema.NewAtom(schema.AtomInteger), nil
	case "number":
		return schema.NewAtom(schema.AtomNumber), nil
	case "null":
		return schema.NewNull(), nil
	case "string":
		return decodeStringAtom(m), nil
	case "object":
		return decodeObject(m, opts)
	case "array":
		return decodeArray(m, opts)
	default:
		return nil, fmt.Errorf("%w: unrecognized \"type\" value %q", schema.ErrInvalidSchema, t)
	}
}

// decodeStringAtom refines a string-typed node via "format" (date/date-time)
// and "contentEncoding"/"contentMediaType" (binary).
func decodeStringAtom(m map[string]any) *schema.Tag {
	if format, ok := m["format"].(string); ok {
		switch format {
		case "date":
			return schema.NewAtom(schema.AtomDate)
		case "date-time":
			return schema.NewAtom(schema.AtomDateTime)
		}
	}

	if enc, ok := m["contentEncoding"].(string); ok && enc == "base64" {
		return schema.NewAtom(schema.AtomBytes)
	}

	if mediaType, ok := m["contentMediaType"].(string); ok && isBinaryMediaType(mediaType) {
		return schema.NewAtom(schema.AtomBytes)
	}

	return schema.NewAtom(schema.AtomString)
}

// isBinaryMediaType reports whether a contentMediaType value implies
// binary payload data rather than textual JSON/plain-text content.
func isBinaryMediaType(mediaType string) bool {
	switch mediaType {
	case "application/octet-stream", "application/pdf", "image/png", "image/jpeg", "image/gif":
		return true
	default:
		return false
	}
}

// hasObjectShape reports whether m declares "properties" or "required",
// i.e. looks like a record even without an explicit "type":"object".
func hasObjectShape(m map[string]any) bool {
	if props, ok := m["properties"].(map[string]any); ok && len(props) > 0 {
		return true
	}

	_, hasRequired := m["required"]

	return hasRequired
}

// hasArrayShape reports whether m declares "items" without an explicit
// "type":"array".
func hasArrayShape(m map[string]any) bool {
	_, ok := m["items"]

	return ok
}

// decodeObject decodes an object-shaped node: a record when "properties"
// is present and non-empty, a map when only "additionalProperties" or
// "patternProperties" is present (an "additionalProperties": false with no
// properties gives an empty closed record instead), otherwise the benign
// opaque fallback for "type":"object" with nothing else.
func decodeObject(m map[string]any, opts schema.Options) (*schema.Tag, error) {
	props, hasProps := m["properties"].(map[string]any)

	if hasProps && len(props) > 0 {
		return decodeObjectProperties(m, props, opts)
	}

	if pattern, ok := m["patternProperties"].(map[string]any); ok && len(pattern) > 0 {
		return decodeMapFromPatternProperties(pattern, opts)
	}

	if additional, ok := m["additionalProperties"]; ok {
		return decodeMapFromAdditionalProperties(additional, opts)
	}

	return benignOpaque(), nil
}

// decodeObjectProperties decodes "properties"/"required" into a
// KindObject tag. Field order is lexicographic: the decoder's source map
// has already lost JSON document order (spec invariant §3.5).
func decodeObjectProperties(m map[string]any, props map[string]any, opts schema.Options) (*schema.Tag, error) {
	required := map[string]bool{}

	if reqList, ok := m["required"].([]any); ok {
		for _, r := range reqList {
			if name, ok := r.(string); ok {
				required[name] = true
			}
		}
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	tag := schema.NewObject()

	for _, k := range keys {
		child, err := decodeNode(props[k], opts)
		if err != nil {
			return nil, fmt.Errorf("properties.%s: %w", k, err)
		}

		tag.AddField(k, child, required[k])
	}

	return tag, nil
}

// decodeMapFromAdditionalProperties decodes a bare "additionalProperties"
// object (no usable "properties") into a KindMap tag. A trivial value
// schema ("true" or "{}") leaves Value nil; the normalizer's map-detection
// phase decides, via allow_maps_without_value, whether that is legal.
func decodeMapFromAdditionalProperties(additional any, opts schema.Options) (*schema.Tag, error) {
	if b, ok := additional.(bool); ok {
		if b {
			return schema.NewMap(nil), nil
		}
		// additionalProperties:false with no properties declares an
		// object that can never carry a key; treated as a closed empty
		// record rather than a dictionary.
		return schema.NewObject(), nil
	}

	m, ok := additional.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: additionalProperties must be a boolean or schema object, got %T", schema.ErrInvalidSchema, additional)
	}

	if len(m) == 0 {
		return schema.NewMap(nil), nil
	}

	value, err := decodeObjectSchema(m, opts)
	if err != nil {
		return nil, fmt.Errorf("additionalProperties: %w", err)
	}

	return schema.NewMap(value), nil
}

// decodeMapFromPatternProperties decodes "patternProperties" into a
// KindMap tag whose value is the union of every pattern's value schema.
func decodeMapFromPatternProperties(pattern map[string]any, opts schema.Options) (*schema.Tag, error) {
	keys := make([]string, 0, len(pattern))
	for k := range pattern {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	variants := make([]*schema.Tag, 0, len(keys))

	for _, k := range keys {
		v, err := decodeNode(pattern[k], opts)
		if err != nil {
			return nil, fmt.Errorf("patternProperties[%s]: %w", k, err)
		}

		variants = append(variants, v)
	}

	if len(variants) == 1 {
		return schema.NewMap(variants[0]), nil
	}

	return schema.NewMap(schema.NewUnion(variants)), nil
}

// decodeArray decodes "items": a single schema produces a homogeneous
// array; an ordered sequence produces a Tuple when tuple_struct is set,
// otherwise an Array over the union of the element schemas.
func decodeArray(m map[string]any, opts schema.Options) (*schema.Tag, error) {
	itemsVal, ok := m["items"]
	if !ok {
		return schema.NewArray(nil), nil
	}

	switch items := itemsVal.(type) {
	case []any:
		if len(items) == 0 {
			return schema.NewArray(nil), nil
		}

		if opts.TupleStruct {
			tupleItems := make([]*schema.Tag, 0, len(items))

			for i, it := range items {
				v, err := decodeNode(it, opts)
				if err != nil {
					return nil, fmt.Errorf("items[%d]: %w", i, err)
				}

				tupleItems = append(tupleItems, v)
			}

			return schema.NewTuple(tupleItems), nil
		}

		variants := make([]*schema.Tag, 0, len(items))

		for i, it := range items {
			v, err := decodeNode(it, opts)
			if err != nil {
				return nil, fmt.Errorf("items[%d]: %w", i, err)
			}

			variants = append(variants, v)
		}

		if len(variants) == 1 {
			return schema.NewArray(variants[0]), nil
		}

		return schema.NewArray(schema.NewUnion(variants)), nil

	default:
		v, err := decodeNode(itemsVal, opts)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}

		return schema.NewArray(v), nil
	}
}

// decodeEnum folds the JSON type of every enum literal into the widest
// atomic type via [widenLiteral], defaulting to Atom(String) when the
// enum is empty or the literals disagree beyond integer/number widening.
func decodeEnum(values []any) *schema.Tag {
	var result schema.Atom

	first := true

	for _, v := range values {
		a, isNull := literalAtom(v)
		if isNull {
			continue
		}

		if first {
			result = a
			first = false

			continue
		}

		widened, ok := widenLiteral(result, a)
		if !ok {
			return schema.NewAtom(schema.AtomString)
		}

		result = widened
	}

	if first {
		return schema.NewAtom(schema.AtomString)
	}

	return schema.NewAtom(result)
}
