package jsonschema_test

import "strings"

// stringsReader adapts a literal JSON document for json.NewDecoder in
// tests.
func stringsReader(s string) *strings.Reader {
	return strings.NewReader(s)
}
