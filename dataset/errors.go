package dataset

import "errors"

// Sentinel errors returned by Parse.
var (
	// ErrUnexpectedEOF indicates the input ended early.
	ErrUnexpectedEOF = errors.New("dataset: unexpected end of input")

	// ErrBadToken indicates a token that is not a decimal integer.
	ErrBadToken = errors.New("dataset: malformed integer")
)
