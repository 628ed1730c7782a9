package schema

// Join computes the least-upper-bound of two tags under the type lattice
// described in spec §4.3.1. It is the single place that encodes the
// system's opinions about type compatibility; N-ary collapse is derived by
// folding Join across a slice (see [FoldJoin]).
//
// Join never returns a KindUnion tag. Null is the identity for nullability:
// joining with Null never changes the other operand's Kind, it only marks
// the result Nullable.
func Join(a, b *Tag) *Tag {
	if a == nil {
		return b
	}

	if b == nil {
		return a
	}

	if a.Kind == KindNull {
		return withNullable(b)
	}

	if b.Kind == KindNull {
		return withNullable(a)
	}

	var result *Tag

	switch {
	case a.Kind == KindAtom && b.Kind == KindAtom:
		result = joinAtoms(a, b)

	case a.Kind == KindObject && b.Kind == KindObject:
		result = joinObjects(a, b)

	case a.Kind == KindMap && b.Kind == KindMap:
		result = &Tag{
			Kind:  KindMap,
			Key:   NewAtom(AtomString),
			Value: Join(a.Value, b.Value),
		}

	case a.Kind == KindArray && b.Kind == KindArray:
		result = &Tag{Kind: KindArray, Items: Join(a.Items, b.Items)}

	case a.Kind == KindTuple && b.Kind == KindTuple && len(a.TupleItems) == len(b.TupleItems):
		items := make([]*Tag, len(a.TupleItems))
		for i := range a.TupleItems {
			items[i] = Join(a.TupleItems[i], b.TupleItems[i])
		}

		result = &Tag{Kind: KindTuple, TupleItems: items}

	default:
		// Structurally incompatible (including tuple/non-tuple and
		// differing-arity tuples): fall back to the opaque-JSON
		// candidate, left for the normalizer's resolution strategy to
		// render as JSON, string, drop, or a hard error.
		result = &Tag{Kind: KindAtom, Atom: AtomJSON, Fallback: FallbackEscalating}
	}

	// A Null absorbed by an earlier join stays absorbed.
	result.Nullable = a.Nullable || b.Nullable

	return result
}

// withNullable returns a shallow copy of t marked Nullable, used when Null
// is absorbed as a union participant.
func withNullable(t *Tag) *Tag {
	cp := *t
	cp.Nullable = true

	return &cp
}

// joinAtoms implements the scalar rows of the lattice: identical atoms join
// to themselves, integer widens to number, and any other combination falls
// back to the opaque-JSON candidate.
func joinAtoms(a, b *Tag) *Tag {
	if a.Atom == b.Atom {
		return &Tag{Kind: KindAtom, Atom: a.Atom}
	}

	if (a.Atom == AtomInteger && b.Atom == AtomNumber) || (a.Atom == AtomNumber && b.Atom == AtomInteger) {
		return &Tag{Kind: KindAtom, Atom: AtomNumber}
	}

	return &Tag{Kind: KindAtom, Atom: AtomJSON, Fallback: FallbackEscalating}
}

// joinObjects implements the record row: fields are the union of keys, each
// shared key's tag is the pointwise join, required is the intersection of
// the two required sets, and any field absent from one side is marked
// nullable in the result (the join "super-sets" common properties).
func joinObjects(a, b *Tag) *Tag {
	result := NewObject()

	for _, name := range a.FieldOrder {
		af := a.Fields[name]

		if bf, ok := b.Fields[name]; ok {
			result.AddField(name, Join(af, bf), a.RequiredSet[name] && b.RequiredSet[name])
		} else {
			result.AddField(name, withNullable(af), false)
		}
	}

	for _, name := range b.FieldOrder {
		if _, ok := a.Fields[name]; ok {
			continue
		}

		result.AddField(name, withNullable(b.Fields[name]), false)
	}

	return result
}

// FoldJoin reduces a non-empty slice of tags to a single tag via a left
// fold over [Join]. Join is commutative and associative over the shapes it
// produces, so the result does not depend on input order (up to field
// ordering, which is resolved later by the encoders).
func FoldJoin(tags []*Tag) *Tag {
	if len(tags) == 0 {
		return nil
	}

	result := tags[0]
	for _, t := range tags[1:] {
		result = Join(result, t)
	}

	return result
}
