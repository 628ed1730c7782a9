package schema

// Kind names the variant a [Tag] carries. A Tag owns its payload directly
// rather than pointing through a shared reference, so the AST is a plain
// tree: every Tag has exactly one owner.
type Kind int

const (
	// KindNull is the absence type.
	KindNull Kind = iota
	// KindAtom is a scalar leaf; see [Tag.Atom] for which one.
	KindAtom
	// KindObject is an ordered mapping from field name to child Tag.
	KindObject
	// KindMap is a homogeneous-value dictionary with a string key.
	KindMap
	// KindArray is a homogeneous list.
	KindArray
	// KindTuple is a heterogeneous fixed-length list, present only when
	// the tuple_struct option is enabled.
	KindTuple
	// KindUnion is a set of alternative tags awaiting collapse. A
	// normalized AST never contains a KindUnion node.
	KindUnion
)

// Atom names a scalar type. Valid only when [Tag.Kind] is [KindAtom].
type Atom int

const (
	AtomBoolean Atom = iota
	AtomInteger
	AtomNumber
	AtomString
	AtomBytes
	AtomDate
	AtomDateTime
	// AtomJSON denotes an opaque-JSON leaf. Legal only under the BigQuery
	// dialect; the Avro encoder renders it as AtomString.
	AtomJSON
)

// Fallback classifies a Tag produced from an underspecified or unrecognized
// JSON Schema construct, so the normalizer can apply the JSON-escape regex
// and resolution strategy once names and namespaces are known (see
// normalize.Collapse and normalize's path-based JSON fallback pass).
// Naming happens during normalization (Tag.Name is "assigned by the parent
// during normalization"), so the decoder cannot test the path-match regex
// itself; it only marks candidacy here.
type Fallback int

const (
	// FallbackNone marks a tag whose type was fully recognized.
	FallbackNone Fallback = iota
	// FallbackBenign marks a tag from a structurally-empty-but-valid
	// construct ("{}" or "{"type":"object"}" alone). It resolves to
	// AtomJSON on a path match and AtomString otherwise; it never
	// escalates through the resolve strategy.
	FallbackBenign
	// FallbackEscalating marks a tag from a construct this engine does not
	// recognize at all. It resolves to AtomJSON on a path match; otherwise
	// it is subject to the resolve strategy (cast/drop/panic).
	FallbackEscalating
)

// Tag is the universal AST node. It carries a type variant plus the
// per-position attributes a pure recursive type cannot hold on its own:
// name, namespace, nullability, and whether the parent's "required" list
// named this tag.
type Tag struct {
	Kind Kind
	Atom Atom

	Name      string
	Namespace string
	Nullable  bool
	// RequiredByParent records whether the containing object declared this
	// tag in its "required" array prior to nullability propagation. It is
	// informational; encoders derive field mode from Nullable, which also
	// accounts for union-absorbed null and force_nullable.
	RequiredByParent bool

	// Fallback is non-zero only for tags produced by an underspecified or
	// unrecognized construct; see [Fallback].
	Fallback Fallback

	// Object fields. FieldOrder is declaration order until normalization,
	// which re-orders it lexicographically by emitted name. RequiredSet
	// names the fields listed in the "required" array; the normalizer uses
	// it to set Nullable on each field and re-keys it under the emitted
	// (case-normalized, collision-suffixed) names.
	Fields      map[string]*Tag
	FieldOrder  []string
	RequiredSet map[string]bool

	// Map: Key is always Atom(String). Value is nil when the map was
	// declared with a trivial value schema (additionalProperties: true or
	// {}) and allow_maps_without_value policy has not yet been applied.
	Key   *Tag
	Value *Tag

	// Array.
	Items *Tag

	// Tuple, positional.
	TupleItems []*Tag

	// Union: alternatives awaiting collapse. Empty after normalization.
	Variants []*Tag
}

// NewNull returns a Tag of KindNull.
func NewNull() *Tag { return &Tag{Kind: KindNull} }

// NewAtom returns a Tag of KindAtom with the given scalar type.
func NewAtom(a Atom) *Tag { return &Tag{Kind: KindAtom, Atom: a} }

// NewObject returns a Tag of KindObject with no fields.
func NewObject() *Tag {
	return &Tag{
		Kind:        KindObject,
		Fields:      map[string]*Tag{},
		RequiredSet: map[string]bool{},
	}
}

// NewMap returns a Tag of KindMap. value may be nil (see [Tag.Value]).
func NewMap(value *Tag) *Tag {
	return &Tag{Kind: KindMap, Key: NewAtom(AtomString), Value: value}
}

// NewArray returns a Tag of KindArray wrapping items. items may be nil for
// an empty sequence with no inferable element type.
func NewArray(items *Tag) *Tag {
	return &Tag{Kind: KindArray, Items: items}
}

// NewTuple returns a Tag of KindTuple with the given positional items.
func NewTuple(items []*Tag) *Tag {
	return &Tag{Kind: KindTuple, TupleItems: items}
}

// NewUnion returns a Tag of KindUnion with the given alternatives.
func NewUnion(variants []*Tag) *Tag {
	return &Tag{Kind: KindUnion, Variants: variants}
}

// AddField inserts (or overwrites) a field in declaration order, recording
// required-ness from the pre-normalization "required" array.
func (t *Tag) AddField(name string, child *Tag, required bool) {
	if _, exists := t.Fields[name]; !exists {
		t.FieldOrder = append(t.FieldOrder, name)
	}

	t.Fields[name] = child

	if required {
		t.RequiredSet[name] = true
	}
}

// IsObjectType reports whether t is a record-shaped node.
func (t *Tag) IsObjectType() bool { return t.Kind == KindObject }

// IsScalar reports whether t is a leaf atom or null.
func (t *Tag) IsScalar() bool { return t.Kind == KindAtom || t.Kind == KindNull }
