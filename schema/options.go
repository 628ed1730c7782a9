package schema

import (
	"fmt"
	"regexp"
)

// ResolveStrategy names the policy applied when a sub-tree cannot be
// expressed in the chosen dialect.
type ResolveStrategy int

const (
	// ResolveCast keeps the lattice fallback (Atom(JSON) or Atom(String));
	// the dialect encoder renders it as a string (or JSON, under BigQuery)
	// column. This is the default.
	ResolveCast ResolveStrategy = iota
	// ResolveDrop omits the offending field from its parent record. If the
	// root itself is unresolvable, the result is an empty record.
	ResolveDrop
	// ResolvePanic fails with ErrIncompatible.
	ResolvePanic
)

// String implements [fmt.Stringer].
func (r ResolveStrategy) String() string {
	switch r {
	case ResolveCast:
		return "cast"
	case ResolveDrop:
		return "drop"
	case ResolvePanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ParseResolveStrategy parses a CLI/context value into a [ResolveStrategy].
func ParseResolveStrategy(s string) (ResolveStrategy, error) {
	switch s {
	case "", "cast":
		return ResolveCast, nil
	case "drop":
		return ResolveDrop, nil
	case "panic":
		return ResolvePanic, nil
	default:
		return 0, fmt.Errorf("%w: unknown resolve strategy %q", ErrInvalidOption, s)
	}
}

// Options bundles the translate-time context shared by the decoder and the
// normalizer. Construct with [NewOptions], which compiles and validates
// JSONObjectPathRegex once so a bad pattern fails fast as ErrInvalidOption
// rather than being rediscovered partway through a large tree walk.
type Options struct {
	Resolve               ResolveStrategy
	NormalizeCase         bool
	ForceNullable         bool
	TupleStruct           bool
	AllowMapsWithoutValue bool

	// PathRegex matches the dotted, post-normalization path of a sub-tree
	// that should be treated as opaque JSON. Nil means no pattern was
	// configured.
	PathRegex *regexp.Regexp
}

// NewOptions builds an [Options], compiling pathRegex if non-empty.
func NewOptions(resolve ResolveStrategy, normalizeCase, forceNullable, tupleStruct, allowMapsWithoutValue bool, pathRegex string) (Options, error) {
	opts := Options{
		Resolve:               resolve,
		NormalizeCase:         normalizeCase,
		ForceNullable:         forceNullable,
		TupleStruct:           tupleStruct,
		AllowMapsWithoutValue: allowMapsWithoutValue,
	}

	if pathRegex != "" {
		re, err := regexp.Compile(pathRegex)
		if err != nil {
			return Options{}, fmt.Errorf("%w: json_object_path_regex: %w", ErrInvalidOption, err)
		}

		opts.PathRegex = re
	}

	return opts, nil
}

// MatchesPath reports whether a dotted path should be treated as opaque
// JSON under the configured regex.
func (o Options) MatchesPath(path string) bool {
	return o.PathRegex != nil && o.PathRegex.MatchString(path)
}
