package normalize

import "github.com/mozilla/jsonschema-transpiler/schema"

// propagateNullability sets Tag.Nullable from the object's required set and
// the force_nullable option, per spec §4.3.2. A field absent from its
// parent's required array is nullable; force_nullable additionally marks
// every non-root tag nullable regardless of required-ness. A map or array's
// own nullability never affects the nullability of its value/items schema,
// only its own field mode.
func propagateNullability(tag *schema.Tag, opts schema.Options, isRoot bool) {
	if tag == nil {
		return
	}

	if !isRoot && opts.ForceNullable {
		tag.Nullable = true
	}

	switch tag.Kind {
	case schema.KindObject:
		for _, name := range tag.FieldOrder {
			child := tag.Fields[name]
			child.RequiredByParent = tag.RequiredSet[name]

			if !tag.RequiredSet[name] {
				child.Nullable = true
			}

			propagateNullability(child, opts, false)
		}

	case schema.KindMap:
		propagateNullability(tag.Value, opts, false)

	case schema.KindArray:
		propagateNullability(tag.Items, opts, false)

	case schema.KindTuple:
		for _, it := range tag.TupleItems {
			propagateNullability(it, opts, false)
		}

	case schema.KindUnion:
		// Not reached once Collapse has run; walked defensively so a
		// caller that skips collapse still gets consistent nullability.
		for _, v := range tag.Variants {
			propagateNullability(v, opts, false)
		}
	}
}
