// Package avro renders a normalized [schema.Tag] into an Avro JSON schema
// value. Encode is a pure function over a tree already produced by
// normalize.Normalize; it does not itself collapse unions, settle
// nullability, or resolve Fallback tags.
package avro
