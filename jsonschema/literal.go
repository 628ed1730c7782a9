package jsonschema

import (
	"encoding/json"
	"strings"

	"github.com/mozilla/jsonschema-transpiler/schema"
)

// literalAtom classifies a decoded JSON literal value (as produced by a
// decoder using UseNumber, or an equivalent YAML decode producing Go
// integer and float64 values)
// for enum type-widening. isNull reports a JSON null literal, which
// contributes no type information.
func literalAtom(v any) (a schema.Atom, isNull bool) {
	switch t := v.(type) {
	case nil:
		return 0, true
	case bool:
		return schema.AtomBoolean, false
	case string:
		return schema.AtomString, false
	case json.Number:
		if strings.ContainsAny(string(t), ".eE") {
			return schema.AtomNumber, false
		}

		return schema.AtomInteger, false
	case float64:
		if t == float64(int64(t)) {
			return schema.AtomInteger, false
		}

		return schema.AtomNumber, false
	case int, int64, uint64:
		return schema.AtomInteger, false
	default:
		// Arrays, objects, or anything else in an enum is not a scalar
		// literal this engine can widen into an atomic type.
		return schema.AtomString, false
	}
}

// widenLiteral folds two literal atom kinds per the enum rule: identical
// atoms stay put, integer/number widen to number, anything else disagrees.
func widenLiteral(a, b schema.Atom) (schema.Atom, bool) {
	if a == b {
		return a, true
	}

	if (a == schema.AtomInteger && b == schema.AtomNumber) || (a == schema.AtomNumber && b == schema.AtomInteger) {
		return schema.AtomNumber, true
	}

	return 0, false
}
