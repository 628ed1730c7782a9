// Package bigquery renders a normalized [schema.Tag] into a BigQuery table
// schema: an ordered list of field descriptors, each with a Name, Type,
// Mode, and (for RECORD fields) nested Fields. Encode is a pure function
// over a tree already produced by normalize.Normalize.
package bigquery
