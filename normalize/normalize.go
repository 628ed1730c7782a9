// Package normalize turns a decoded AST into the canonical form the dialect
// encoders expect: no unions, every tag named and namespaced, nullability
// settled, and every Fallback-marked or value-less-map placeholder resolved
// to a concrete type or dropped per the configured strategy.
//
// The six phases from spec §4.3 run in order, but two pairs are fused for
// implementation convenience rather than kept as separate tree walks: case
// normalization (phase 4) runs inline with name assignment (phase 5) since
// a collision check needs the normalized name before it can be assigned,
// and the allow_maps_without_value decision (part of phase 3) runs inline
// with the JSON-escape/resolve-strategy pass (phase 6) since both need a
// tag's final dotted path before they can act. Union collapse (phase 1)
// and nullability propagation (phase 2) remain standalone passes.
package normalize

import "github.com/mozilla/jsonschema-transpiler/schema"

// Normalize runs the full pipeline over tag and returns the canonical tree
// ready for dialect encoding. The root tag is always named "root" with an
// empty namespace. If the root itself resolves to drop (resolve=drop and
// the entire schema is unrepresentable), Normalize returns an empty record
// rather than a nil tag, per spec §4.3.6.
func Normalize(tag *schema.Tag, opts schema.Options) (*schema.Tag, error) {
	collapsed := Collapse(tag)

	propagateNullability(collapsed, opts, true)

	resolved, keep, err := finalize(collapsed, "", "root", opts)
	if err != nil {
		return nil, err
	}

	if !keep {
		empty := schema.NewObject()
		empty.Name = "root"

		return empty, nil
	}

	return resolved, nil
}
