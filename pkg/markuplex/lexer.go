package markuplex

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/jacoelho/tagsoup/internal/emitter"
)

const cdataOpen = "![CDATA["

var cdataClose = []byte("]]>")

// quote records which quote character opened the current attribute value.
// quoteNone marks a bare value.
type quote byte

const quoteNone quote = 0

// Lexer turns a byte stream into lexical events.
//
// Input may arrive in chunks of any size; splitting the same input differently
// yields the same events. Events are delivered synchronously to subscribers
// before Write returns. A Lexer is not safe for concurrent use.
type Lexer struct {
	events    emitter.Emitter[Event]
	log       *slog.Logger
	data      []byte
	tagName   []byte
	attrName  []byte
	attrValue []byte
	state     State
	quote     quote
	isClosing bool
	closed    bool
}

// New returns a lexer in the Data state.
func New(opts ...Options) *Lexer {
	cfg := JoinOptions(opts...)
	return &Lexer{log: cfg.diagnostics()}
}

// Subscribe registers fn for every published event and returns a function
// that removes it.
func (l *Lexer) Subscribe(fn func(Event)) (cancel func()) {
	return l.events.On(fn)
}

// State reports the current state of the lexer.
func (l *Lexer) State() State {
	return l.state
}

// Write lexes p. It never fails except after Close.
func (l *Lexer) Write(p []byte) (int, error) {
	if l.closed {
		return 0, ErrClosed
	}
	for _, c := range p {
		l.step(c)
	}
	return len(p), nil
}

// WriteString lexes s. It never fails except after Close.
func (l *Lexer) WriteString(s string) (int, error) {
	if l.closed {
		return 0, ErrClosed
	}
	for i := 0; i < len(s); i++ {
		l.step(s[i])
	}
	return len(s), nil
}

// Flush publishes pending text when the lexer is between tags.
// Text is otherwise only published when the next '<' arrives.
// Flush has no effect inside a tag or a CDATA section.
func (l *Lexer) Flush() {
	if l.state != StateData {
		return
	}
	l.flushText()
}

// Close flushes pending text and rejects further writes.
func (l *Lexer) Close() error {
	if l.closed {
		return nil
	}
	l.Flush()
	l.closed = true
	return nil
}

func (l *Lexer) step(c byte) {
	if l.log != nil {
		l.log.LogAttrs(context.Background(), slog.LevelDebug, "step",
			slog.String("state", l.state.String()),
			slog.String("char", string(c)),
		)
	}
	row := &transitions[l.state]
	fn := row[Classify(c)]
	if fn == nil {
		fn = row[ActionError]
	}
	if fn == nil {
		fn = row[ActionChar]
	}
	if fn == nil {
		return
	}
	fn(l, c)
}

// suppressed reports whether the tag in progress is a processing
// instruction, doctype or comment.
func (l *Lexer) suppressed() bool {
	return len(l.tagName) > 0 && (l.tagName[0] == '?' || l.tagName[0] == '!')
}

func (l *Lexer) emit(kind Kind, value []byte) {
	if l.suppressed() {
		return
	}
	ev := Event{Kind: kind, Value: string(value)}
	if l.log != nil {
		l.log.LogAttrs(context.Background(), slog.LevelDebug, "emit",
			slog.String("type", kind.String()),
			slog.String("value", ev.Value),
		)
	}
	l.events.Emit(ev)
}

func (l *Lexer) emitTag() {
	if l.isClosing {
		l.emit(KindCloseTag, l.tagName)
		return
	}
	l.emit(KindOpenTag, l.tagName)
}

// emitBareAttribute publishes the pending attribute name with an empty value.
func (l *Lexer) emitBareAttribute() {
	l.attrValue = l.attrValue[:0]
	l.emit(KindAttributeName, l.attrName)
	l.emit(KindAttributeValue, l.attrValue)
}

func (l *Lexer) flushText() {
	text := bytes.TrimSpace(l.data)
	if len(text) > 0 {
		l.emit(KindText, text)
	}
	l.data = l.data[:0]
}

// endTag leaves the current tag and returns to Data.
func (l *Lexer) endTag() {
	l.tagName = l.tagName[:0]
	l.isClosing = false
	l.data = l.data[:0]
	l.state = StateData
}

type transition func(l *Lexer, c byte)

func ignore(*Lexer, byte) {}

var transitions = [stateCount][actionCount]transition{
	StateData: {
		ActionLt:   (*Lexer).dataLt,
		ActionChar: (*Lexer).dataChar,
	},
	StateCData: {
		ActionChar: (*Lexer).cdataChar,
	},
	StateTagBegin: {
		ActionSpace: ignore,
		ActionSlash: (*Lexer).tagBeginSlash,
		ActionChar:  (*Lexer).tagBeginChar,
	},
	StateTagName: {
		ActionSpace: (*Lexer).tagNameSpace,
		ActionGt:    (*Lexer).tagNameGt,
		ActionSlash: (*Lexer).tagNameSlash,
		ActionChar:  (*Lexer).tagNameChar,
	},
	StateTagEnd: {
		ActionGt:   (*Lexer).tagEndGt,
		ActionChar: ignore,
	},
	StateAttributeNameStart: {
		ActionGt:    (*Lexer).attrNameStartGt,
		ActionSpace: ignore,
		ActionSlash: (*Lexer).attrNameStartSlash,
		ActionChar:  (*Lexer).attrNameStartChar,
	},
	StateAttributeName: {
		ActionGt:    (*Lexer).attrNameGt,
		ActionSpace: (*Lexer).attrNameSpace,
		ActionEqual: (*Lexer).attrNameEqual,
		ActionSlash: (*Lexer).attrNameSlash,
		ActionChar:  (*Lexer).attrNameChar,
	},
	StateAttributeNameEnd: {
		ActionGt:    (*Lexer).attrNameGt,
		ActionSpace: ignore,
		ActionEqual: (*Lexer).attrNameEqual,
		ActionChar:  (*Lexer).attrNameEndChar,
	},
	StateAttributeValueBegin: {
		ActionGt:          (*Lexer).attrValueBeginGt,
		ActionSpace:       ignore,
		ActionSingleQuote: (*Lexer).attrValueBeginQuote,
		ActionDoubleQuote: (*Lexer).attrValueBeginQuote,
		ActionChar:        (*Lexer).attrValueBeginChar,
	},
	StateAttributeValue: {
		ActionGt:          (*Lexer).attrValueGt,
		ActionSpace:       (*Lexer).attrValueSpace,
		ActionSingleQuote: (*Lexer).attrValueQuote,
		ActionDoubleQuote: (*Lexer).attrValueQuote,
		ActionSlash:       (*Lexer).attrValueSlash,
		ActionChar:        (*Lexer).attrValueChar,
	},
}

func (l *Lexer) dataLt(byte) {
	l.flushText()
	l.tagName = l.tagName[:0]
	l.isClosing = false
	l.state = StateTagBegin
}

func (l *Lexer) dataChar(c byte) {
	l.data = append(l.data, c)
}

func (l *Lexer) cdataChar(c byte) {
	l.data = append(l.data, c)
	if !bytes.HasSuffix(l.data, cdataClose) {
		return
	}
	// CDATA content is published verbatim, blank or not.
	l.emit(KindText, l.data[:len(l.data)-len(cdataClose)])
	l.data = l.data[:0]
	l.state = StateData
}

func (l *Lexer) tagBeginSlash(byte) {
	l.tagName = l.tagName[:0]
	l.isClosing = true
}

func (l *Lexer) tagBeginChar(c byte) {
	l.tagName = append(l.tagName[:0], c)
	l.state = StateTagName
}

func (l *Lexer) tagNameSpace(byte) {
	if l.isClosing {
		l.state = StateTagEnd
		return
	}
	l.emit(KindOpenTag, l.tagName)
	l.state = StateAttributeNameStart
}

func (l *Lexer) tagNameGt(byte) {
	l.emitTag()
	l.endTag()
}

func (l *Lexer) tagNameSlash(byte) {
	l.emit(KindOpenTag, l.tagName)
	l.state = StateTagEnd
}

func (l *Lexer) tagNameChar(c byte) {
	l.tagName = append(l.tagName, c)
	if string(l.tagName) == cdataOpen {
		l.tagName = l.tagName[:0]
		l.data = l.data[:0]
		l.state = StateCData
	}
}

func (l *Lexer) tagEndGt(byte) {
	l.emit(KindCloseTag, l.tagName)
	l.endTag()
}

func (l *Lexer) attrNameStartGt(byte) {
	l.endTag()
}

func (l *Lexer) attrNameStartSlash(byte) {
	l.isClosing = true
	l.state = StateTagEnd
}

func (l *Lexer) attrNameStartChar(c byte) {
	l.attrName = append(l.attrName[:0], c)
	l.state = StateAttributeName
}

func (l *Lexer) attrNameGt(byte) {
	l.emitBareAttribute()
	l.endTag()
}

func (l *Lexer) attrNameSpace(byte) {
	l.state = StateAttributeNameEnd
}

func (l *Lexer) attrNameEqual(byte) {
	l.emit(KindAttributeName, l.attrName)
	l.state = StateAttributeValueBegin
}

func (l *Lexer) attrNameSlash(byte) {
	l.emitBareAttribute()
	l.isClosing = true
	l.state = StateTagEnd
}

func (l *Lexer) attrNameChar(c byte) {
	l.attrName = append(l.attrName, c)
}

func (l *Lexer) attrNameEndChar(c byte) {
	l.emitBareAttribute()
	l.attrName = append(l.attrName[:0], c)
	l.state = StateAttributeName
}

func (l *Lexer) attrValueBeginGt(byte) {
	l.attrValue = l.attrValue[:0]
	l.emit(KindAttributeValue, l.attrValue)
	l.endTag()
}

func (l *Lexer) attrValueBeginQuote(c byte) {
	l.quote = quote(c)
	l.attrValue = l.attrValue[:0]
	l.state = StateAttributeValue
}

func (l *Lexer) attrValueBeginChar(c byte) {
	l.quote = quoteNone
	l.attrValue = append(l.attrValue[:0], c)
	l.state = StateAttributeValue
}

func (l *Lexer) attrValueGt(c byte) {
	if l.quote != quoteNone {
		l.attrValue = append(l.attrValue, c)
		return
	}
	l.emit(KindAttributeValue, l.attrValue)
	l.endTag()
}

func (l *Lexer) attrValueSpace(c byte) {
	if l.quote != quoteNone {
		l.attrValue = append(l.attrValue, c)
		return
	}
	l.emit(KindAttributeValue, l.attrValue)
	l.state = StateAttributeNameStart
}

func (l *Lexer) attrValueQuote(c byte) {
	if quote(c) != l.quote {
		l.attrValue = append(l.attrValue, c)
		return
	}
	l.emit(KindAttributeValue, l.attrValue)
	l.state = StateAttributeNameStart
}

func (l *Lexer) attrValueSlash(c byte) {
	if l.quote != quoteNone {
		l.attrValue = append(l.attrValue, c)
		return
	}
	l.emit(KindAttributeValue, l.attrValue)
	l.isClosing = true
	l.state = StateTagEnd
}

func (l *Lexer) attrValueChar(c byte) {
	l.attrValue = append(l.attrValue, c)
}
