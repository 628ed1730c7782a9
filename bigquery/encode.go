package bigquery

import (
	"fmt"

	"github.com/mozilla/jsonschema-transpiler/schema"
)

// Field is one entry of a BigQuery table schema, matching the shape BigQuery
// itself accepts as schema JSON.
type Field struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Mode   string  `json:"mode,omitempty"`
	Fields []Field `json:"fields,omitempty"`
}

// Encode renders root's fields as a BigQuery table schema. root must be a
// normalized KindObject tag; the root record itself has no Field entry of
// its own; only its children are emitted.
func Encode(root *schema.Tag) ([]Field, error) {
	if root.Kind != schema.KindObject {
		return nil, fmt.Errorf("%w: bigquery encode: root must be an object, got kind %d", schema.ErrInvalidSchema, root.Kind)
	}

	return encodeFields(root)
}

func encodeFields(obj *schema.Tag) ([]Field, error) {
	fields := make([]Field, 0, len(obj.FieldOrder))

	for _, name := range obj.FieldOrder {
		field, err := encodeField(obj.Fields[name])
		if err != nil {
			return nil, err
		}

		fields = append(fields, field)
	}

	return fields, nil
}

func encodeField(tag *schema.Tag) (Field, error) {
	switch tag.Kind {
	case schema.KindNull:
		return Field{Name: tag.Name, Type: "STRING", Mode: "NULLABLE"}, nil

	case schema.KindAtom:
		t, err := atomType(tag.Atom)
		if err != nil {
			return Field{}, err
		}

		return Field{Name: tag.Name, Type: t, Mode: mode(tag.Nullable)}, nil

	case schema.KindObject:
		sub, err := encodeFields(tag)
		if err != nil {
			return Field{}, err
		}

		return Field{Name: tag.Name, Type: "RECORD", Mode: mode(tag.Nullable), Fields: sub}, nil

	case schema.KindMap:
		return encodeMapField(tag)

	case schema.KindArray:
		return encodeArrayField(tag)

	case schema.KindTuple:
		sub := make([]Field, 0, len(tag.TupleItems))

		for _, item := range tag.TupleItems {
			f, err := encodeField(item)
			if err != nil {
				return Field{}, err
			}

			sub = append(sub, f)
		}

		return Field{Name: tag.Name, Type: "RECORD", Mode: mode(tag.Nullable), Fields: sub}, nil

	default:
		return Field{}, fmt.Errorf("%w: bigquery encode: unexpected kind %d", schema.ErrInvalidSchema, tag.Kind)
	}
}

// encodeMapField renders a map as a REPEATED RECORD of key/value pairs,
// BigQuery's standard representation for a dictionary-typed column. A map
// left without a value schema (allow_maps_without_value) emits only the key
// field.
func encodeMapField(tag *schema.Tag) (Field, error) {
	keyField := Field{Name: "key", Type: "STRING", Mode: "REQUIRED"}

	if tag.Value == nil {
		return Field{
			Name:   tag.Name,
			Type:   "RECORD",
			Mode:   "REPEATED",
			Fields: []Field{keyField},
		}, nil
	}

	valueField, err := encodeField(tag.Value)
	if err != nil {
		return Field{}, err
	}

	valueField.Name = "value"

	return Field{
		Name:   tag.Name,
		Type:   "RECORD",
		Mode:   "REPEATED",
		Fields: []Field{keyField, valueField},
	}, nil
}

// encodeArrayField renders an array as a field in REPEATED mode carrying
// the element type directly, rather than wrapping it a second time.
func encodeArrayField(tag *schema.Tag) (Field, error) {
	if tag.Items == nil {
		return Field{Name: tag.Name, Type: "STRING", Mode: "REPEATED"}, nil
	}

	item, err := encodeField(tag.Items)
	if err != nil {
		return Field{}, err
	}

	item.Name = tag.Name
	item.Mode = "REPEATED"

	return item, nil
}

func atomType(a schema.Atom) (string, error) {
	switch a {
	case schema.AtomBoolean:
		return "BOOL", nil
	case schema.AtomInteger:
		return "INT64", nil
	case schema.AtomNumber:
		return "FLOAT64", nil
	case schema.AtomString:
		return "STRING", nil
	case schema.AtomBytes:
		return "BYTES", nil
	case schema.AtomDate:
		return "DATE", nil
	case schema.AtomDateTime:
		return "TIMESTAMP", nil
	case schema.AtomJSON:
		return "JSON", nil
	default:
		return "", fmt.Errorf("%w: bigquery encode: unknown atom %d", schema.ErrInvalidSchema, a)
	}
}

func mode(nullable bool) string {
	if nullable {
		return "NULLABLE"
	}

	return "REQUIRED"
}
