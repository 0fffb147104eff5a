// Package markuplex provides a streaming, fault-tolerant lexer for permissive
// XML and HTML-like markup.
//
// The lexer is a byte-driven state machine. It publishes open tags, close
// tags, attribute names, attribute values and text runs to subscribers as
// soon as each token is complete. Malformed markup never stops it: bytes that
// do not fit the current state fall back to the state's character rule.
//
// Processing instructions, doctypes and comments (tags whose name starts with
// '?' or '!') are consumed but never published. CDATA sections are published
// as raw text.
//
// Text between tags is published, trimmed, when the next '<' is read. Text at
// the end of the input is only published by Flush or Close.
package markuplex
