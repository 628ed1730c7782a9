package avro

import (
	"fmt"

	"github.com/mozilla/jsonschema-transpiler/schema"
)

// Encode renders tag as an Avro JSON schema value (a string, or a
// map[string]any / []any tree suitable for encoding/json.Marshal). tag must
// already be normalized.
func Encode(tag *schema.Tag) (any, error) {
	return encodeType(tag)
}

// encodeType renders tag's type, wrapping it in a ["null", <type>] union
// when Nullable. Avro expects the null branch first by convention.
func encodeType(tag *schema.Tag) (any, error) {
	if tag == nil {
		return "string", nil
	}

	base, err := encodeBase(tag)
	if err != nil {
		return nil, err
	}

	if tag.Kind != schema.KindNull && tag.Nullable {
		return []any{"null", base}, nil
	}

	return base, nil
}

func encodeBase(tag *schema.Tag) (any, error) {
	switch tag.Kind {
	case schema.KindNull:
		return "null", nil

	case schema.KindAtom:
		return encodeAtom(tag.Atom)

	case schema.KindObject:
		return encodeRecord(tag)

	case schema.KindMap:
		values, err := encodeType(tag.Value)
		if err != nil {
			return nil, err
		}

		return map[string]any{"type": "map", "values": values}, nil

	case schema.KindArray:
		var items any = "string"

		if tag.Items != nil {
			var err error

			items, err = encodeType(tag.Items)
			if err != nil {
				return nil, err
			}
		}

		return map[string]any{"type": "array", "items": items}, nil

	case schema.KindTuple:
		return encodeTuple(tag)

	default:
		return nil, fmt.Errorf("%w: avro encode: unexpected kind %d", schema.ErrInvalidSchema, tag.Kind)
	}
}

func encodeAtom(a schema.Atom) (any, error) {
	switch a {
	case schema.AtomBoolean:
		return "boolean", nil
	case schema.AtomInteger:
		return "long", nil
	case schema.AtomNumber:
		return "double", nil
	case schema.AtomString:
		return "string", nil
	case schema.AtomBytes:
		return "bytes", nil
	case schema.AtomDate:
		return map[string]any{"type": "int", "logicalType": "date"}, nil
	case schema.AtomDateTime:
		return map[string]any{"type": "long", "logicalType": "timestamp-micros"}, nil
	case schema.AtomJSON:
		// Avro has no opaque-JSON primitive; render the cast/benign fallback
		// as a plain string column.
		return "string", nil
	default:
		return nil, fmt.Errorf("%w: avro encode: unknown atom %d", schema.ErrInvalidSchema, a)
	}
}

func encodeRecord(tag *schema.Tag) (any, error) {
	fields := make([]any, 0, len(tag.FieldOrder))

	for _, name := range tag.FieldOrder {
		field := tag.Fields[name]

		fieldType, err := encodeType(field)
		if err != nil {
			return nil, err
		}

		obj := map[string]any{"name": field.Name, "type": fieldType}
		if field.Nullable {
			obj["default"] = nil
		}

		fields = append(fields, obj)
	}

	record := map[string]any{"type": "record", "name": tag.Name, "fields": fields}
	if tag.Namespace != "" {
		record["namespace"] = tag.Namespace
	}

	return record, nil
}

func encodeTuple(tag *schema.Tag) (any, error) {
	fields := make([]any, 0, len(tag.TupleItems))

	for _, item := range tag.TupleItems {
		itemType, err := encodeType(item)
		if err != nil {
			return nil, err
		}

		obj := map[string]any{"name": item.Name, "type": itemType}
		if item.Nullable {
			obj["default"] = nil
		}

		fields = append(fields, obj)
	}

	record := map[string]any{"type": "record", "name": tag.Name, "fields": fields}
	if tag.Namespace != "" {
		record["namespace"] = tag.Namespace
	}

	return record, nil
}
