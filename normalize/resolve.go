package normalize

import (
	"fmt"
	"sort"

	"github.com/mozilla/jsonschema-transpiler/schema"
)

// joinNamespace builds the dotted namespace a child tag inherits from its
// container: the container's own namespace plus the container's own name,
// omitting the leading dot at the root (spec §4.3.5).
func joinNamespace(namespace, name string) string {
	if namespace == "" {
		return name
	}

	return namespace + "." + name
}

// finalize assigns name and namespace to tag and every descendant, replaces
// any tag whose dotted path matches the JSON-escape path regex with
// Atom(JSON), applies the allow_maps_without_value policy to trivial-value
// maps, and resolves any Fallback-marked tag via the resolve strategy. It
// returns keep=false when tag (or an unresolvable descendant
// that cannot be represented as a hole) must be omitted from its parent
// container; the caller propagates that upward until an object field can
// absorb it by omission, or the root is reached.
func finalize(tag *schema.Tag, namespace, name string, opts schema.Options) (*schema.Tag, bool, error) {
	if tag == nil {
		return nil, true, nil
	}

	tag.Name = name
	tag.Namespace = namespace

	path := joinNamespace(namespace, name)

	if opts.MatchesPath(path) {
		return atomWithMeta(tag, schema.AtomJSON), true, nil
	}

	if tag.Fallback != schema.FallbackNone {
		return resolveFallback(tag, path, opts)
	}

	switch tag.Kind {
	case schema.KindNull, schema.KindAtom:
		return tag, true, nil

	case schema.KindObject:
		return finalizeObject(tag, path, opts)

	case schema.KindMap:
		return finalizeMap(tag, path, opts)

	case schema.KindArray:
		return finalizeArray(tag, path, opts)

	case schema.KindTuple:
		return finalizeTuple(tag, path, opts)

	default:
		return nil, false, fmt.Errorf("%w: union node survived collapse at %s", schema.ErrInvalidSchema, path)
	}
}

// candidateField pairs a field's pre-normalization name with the name it
// will be emitted under (case-folded, before collision suffixing).
type candidateField struct {
	rawName   string
	candidate string
}

// finalizeObject assigns each field its emitted name and finalizes its
// child, emitting fields in lexicographic order of that emitted name (spec
// §3 invariant 5, §4.4, §4.5: field order is lexicographic in both
// dialects). Fields are sorted by candidate name before collision suffixes
// are assigned, so the sort is stable regardless of whether the object was
// decoded directly or produced by joining oneOf/anyOf/allOf branches with
// out-of-order field sets.
func finalizeObject(tag *schema.Tag, childNamespace string, opts schema.Options) (*schema.Tag, bool, error) {
	candidates := make([]candidateField, len(tag.FieldOrder))

	for i, rawName := range tag.FieldOrder {
		candidate := rawName
		if opts.NormalizeCase {
			candidate = ToSnakeCase(rawName)
		}

		candidates[i] = candidateField{rawName: rawName, candidate: candidate}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].candidate < candidates[j].candidate
	})

	newFields := map[string]*schema.Tag{}

	var newOrder []string

	newRequired := map[string]bool{}
	used := map[string]int{}

	for _, cf := range candidates {
		child := tag.Fields[cf.rawName]

		finalName := cf.candidate
		if n, seen := used[cf.candidate]; seen {
			used[cf.candidate] = n + 1
			finalName = fmt.Sprintf("%s_%d", cf.candidate, n+1)
		} else {
			used[cf.candidate] = 0
		}

		resolved, keep, err := finalize(child, childNamespace, finalName, opts)
		if err != nil {
			return nil, false, err
		}

		if !keep {
			continue
		}

		if _, exists := newFields[finalName]; !exists {
			newOrder = append(newOrder, finalName)
		}

		newFields[finalName] = resolved

		if tag.RequiredSet[cf.rawName] {
			newRequired[finalName] = true
		}
	}

	tag.Fields = newFields
	tag.FieldOrder = newOrder
	tag.RequiredSet = newRequired

	return tag, true, nil
}

func finalizeMap(tag *schema.Tag, childNamespace string, opts schema.Options) (*schema.Tag, bool, error) {
	if tag.Value == nil && !opts.AllowMapsWithoutValue {
		synthetic := &schema.Tag{
			Kind:             schema.KindAtom,
			Atom:             schema.AtomJSON,
			Fallback:         schema.FallbackEscalating,
			Name:             tag.Name,
			Namespace:        tag.Namespace,
			Nullable:         tag.Nullable,
			RequiredByParent: tag.RequiredByParent,
		}

		return resolveFallback(synthetic, joinNamespace(tag.Namespace, tag.Name), opts)
	}

	tag.Key.Name, tag.Key.Namespace = "key", childNamespace

	value, keep, err := finalize(tag.Value, childNamespace, "value", opts)
	if err != nil {
		return nil, false, err
	}

	if !keep {
		// The value schema was dropped outright; a map can't express a
		// value-less slot, so the whole map is unresolvable too.
		return nil, false, nil
	}

	tag.Value = value

	return tag, true, nil
}

func finalizeArray(tag *schema.Tag, childNamespace string, opts schema.Options) (*schema.Tag, bool, error) {
	if tag.Items == nil {
		return tag, true, nil
	}

	items, keep, err := finalize(tag.Items, childNamespace, "items", opts)
	if err != nil {
		return nil, false, err
	}

	if !keep {
		return nil, false, nil
	}

	tag.Items = items

	return tag, true, nil
}

func finalizeTuple(tag *schema.Tag, childNamespace string, opts schema.Options) (*schema.Tag, bool, error) {
	newItems := make([]*schema.Tag, 0, len(tag.TupleItems))

	for i, item := range tag.TupleItems {
		resolved, keep, err := finalize(item, childNamespace, fmt.Sprintf("f%d_", i), opts)
		if err != nil {
			return nil, false, err
		}

		if !keep {
			// No hole representation for a positional slot: the whole
			// tuple becomes unresolvable and bubbles up one level.
			return nil, false, nil
		}

		newItems = append(newItems, resolved)
	}

	tag.TupleItems = newItems

	return tag, true, nil
}

// resolveFallback applies the JSON-escape path regex, then the resolve
// strategy, to a tag marked [schema.FallbackBenign] or
// [schema.FallbackEscalating]. A path match always wins and yields opaque
// JSON regardless of fallback class or strategy.
func resolveFallback(tag *schema.Tag, path string, opts schema.Options) (*schema.Tag, bool, error) {
	if opts.MatchesPath(path) {
		return atomWithMeta(tag, schema.AtomJSON), true, nil
	}

	switch tag.Fallback {
	case schema.FallbackBenign:
		return atomWithMeta(tag, schema.AtomString), true, nil

	case schema.FallbackEscalating:
		switch opts.Resolve {
		case schema.ResolveDrop:
			return nil, false, nil

		case schema.ResolvePanic:
			return nil, false, fmt.Errorf("%w: at %s", schema.ErrIncompatible, path)

		default: // schema.ResolveCast
			return atomWithMeta(tag, schema.AtomJSON), true, nil
		}

	default:
		return tag, true, nil
	}
}

// atomWithMeta returns an Atom(kind) tag carrying over the name/namespace/
// nullability already assigned to the tag it replaces.
func atomWithMeta(tag *schema.Tag, kind schema.Atom) *schema.Tag {
	return &schema.Tag{
		Kind:             schema.KindAtom,
		Atom:             kind,
		Name:             tag.Name,
		Namespace:        tag.Namespace,
		Nullable:         tag.Nullable,
		RequiredByParent: tag.RequiredByParent,
	}
}
