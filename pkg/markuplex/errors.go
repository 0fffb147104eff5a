package markuplex

import "errors"

// ErrClosed is returned by writes to a lexer after Close.
var ErrClosed = errors.New("markuplex: write to closed lexer")

var (
	errNilReader   = errors.New("nil markup reader")
	errUnknownKind = errors.New("unknown event kind")
)
