package normalize

import "github.com/mozilla/jsonschema-transpiler/schema"

// Collapse walks the AST bottom-up and removes every KindUnion node,
// replacing each with the least-upper-bound of its (already collapsed)
// variants per [schema.FoldJoin]. A fully collapsed tree contains no
// KindUnion node anywhere, including nested inside object fields, map
// values, array items, and tuple slots.
func Collapse(tag *schema.Tag) *schema.Tag {
	if tag == nil {
		return nil
	}

	switch tag.Kind {
	case schema.KindUnion:
		variants := make([]*schema.Tag, len(tag.Variants))
		for i, v := range tag.Variants {
			variants[i] = Collapse(v)
		}

		return schema.FoldJoin(variants)

	case schema.KindObject:
		result := schema.NewObject()

		for _, name := range tag.FieldOrder {
			result.AddField(name, Collapse(tag.Fields[name]), tag.RequiredSet[name])
		}

		return result

	case schema.KindMap:
		return schema.NewMap(Collapse(tag.Value))

	case schema.KindArray:
		return schema.NewArray(Collapse(tag.Items))

	case schema.KindTuple:
		items := make([]*schema.Tag, len(tag.TupleItems))
		for i, it := range tag.TupleItems {
			items[i] = Collapse(it)
		}

		return schema.NewTuple(items)

	default:
		// KindNull, KindAtom: leaves carry no children to collapse.
		return tag
	}
}
