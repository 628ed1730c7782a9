package transpile

import "errors"

// Sentinel errors returned by this package. ErrInvalidOption mirrors
// schema.ErrInvalidOption for transpile-level CLI values (dialect, input
// format) that aren't part of the schema.Options surface itself.
var (
	ErrInvalidOption = errors.New("invalid option")
	ErrReadInput     = errors.New("read input")
	ErrWriteOutput   = errors.New("write output")
)
