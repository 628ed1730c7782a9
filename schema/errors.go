package schema

import "errors"

// Sentinel errors returned by the decoder, normalizer, and encoders.
// Wrap with fmt.Errorf("%w: ...") and match with [errors.Is].
var (
	// ErrInvalidSchema indicates the input is syntactically well-formed JSON
	// but not a recognizable JSON Schema node (e.g. "type" is a number).
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrIncompatible indicates a sub-schema cannot be expressed in the
	// target dialect and the resolution strategy is Panic.
	ErrIncompatible = errors.New("incompatible schema")

	// ErrInvalidOption indicates an option combination is meaningless, such
	// as an unparseable json_object_path_regex.
	ErrInvalidOption = errors.New("invalid option")
)
