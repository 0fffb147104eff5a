// Package tagsoup lexes imperfect XML and HTML into a flat stream of tag,
// attribute and text events.
//
// The lexer itself lives in pkg/markuplex; this package offers one-call
// helpers for whole documents.
package tagsoup

import (
	"fmt"
	"io"

	"github.com/jacoelho/tagsoup/pkg/markuplex"
)

type (
	// Event is a single lexical unit.
	Event = markuplex.Event
	// Kind identifies the lexical kind of an event.
	Kind = markuplex.Kind
	// Options configures a lexer.
	Options = markuplex.Options
)

const (
	KindText           = markuplex.KindText
	KindOpenTag        = markuplex.KindOpenTag
	KindCloseTag       = markuplex.KindCloseTag
	KindAttributeName  = markuplex.KindAttributeName
	KindAttributeValue = markuplex.KindAttributeValue
)

// Tokenize lexes the whole of s, including trailing text.
func Tokenize(s string, opts ...Options) []Event {
	var events []Event
	lx := markuplex.New(opts...)
	lx.Subscribe(func(ev Event) {
		events = append(events, ev)
	})
	_, _ = lx.WriteString(s)
	_ = lx.Close()
	return events
}

// TokenizeReader lexes everything read from r, including trailing text.
// On a read error it returns the events published so far.
func TokenizeReader(r io.Reader, opts ...Options) ([]Event, error) {
	var events []Event
	for ev, err := range markuplex.Tokens(r, opts...) {
		if err != nil {
			return events, fmt.Errorf("tokenize: %w", err)
		}
		events = append(events, ev)
	}
	return events, nil
}
