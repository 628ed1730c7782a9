// Package jsonschema decodes a JSON Schema document into a [schema.Tag]
// tree. It recognizes the keyword families enumerated in spec §4.1:
// "type" (single or multi-valued), "properties"/"required", bare
// "additionalProperties", "patternProperties", "items" (single schema or
// an ordered sequence), "oneOf"/"anyOf"/"allOf", "enum", "format",
// "contentEncoding"/"contentMediaType", and the empty schema "{}".
//
// The decoder does not assign names, namespaces, or nullability; a "null"
// type stays a variant of its union until the normalizer absorbs it. Those,
// along with the
// json_object_path_regex opaque-JSON override, are normalizer
// responsibilities, because naming -- and therefore the dotted path the
// regex matches against -- is "assigned by the parent during
// normalization" (spec §3). A node the decoder cannot place into any
// recognized shape is marked with a [schema.Fallback] instead: the
// normalizer resolves it once paths are known.
//
// Input is decoded by the caller (see [github.com/mozilla/jsonschema-transpiler/transpile])
// with [encoding/json.Decoder.UseNumber] so enum literals can be told apart
// as integers or floats; Decode accepts the resulting generic
// map[string]any/[]any/json.Number/string/bool/nil tree, never raw bytes.
package jsonschema
