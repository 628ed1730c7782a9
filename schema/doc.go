// Package schema defines the intermediate representation shared by the
// decoder, normalizer, and dialect encoders: [Tag], its [Kind] and [Atom]
// variants, and the lattice [Join] operation that reconciles alternative
// types produced by a union.
//
// [Tag] is the "tag-as-proxy" design: a recursive sum type
// cannot carry per-node attributes (name, namespace, nullability, whether
// the parent required it) on its own, so each node is a record that owns
// its type payload, and the payload's children are further Tags. There is
// no shared ownership and no persistence; tags are built once by the
// decoder, mutated in place by the normalizer, and read by the encoders.
//
// [Join] is deliberately a pure binary operation over two Tags, with N-ary
// collapse derived as a left fold ([FoldJoin]) -- the natural shape for
// property-based tests of commutativity (see TestJoinCommutative).
package schema
