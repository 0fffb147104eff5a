package markuplex

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

const readerBufferSize = 32 * 1024

// ReadFrom lexes everything read from r until EOF.
// It does not flush trailing text; call Flush or Close for that.
func (l *Lexer) ReadFrom(r io.Reader) (int64, error) {
	if r == nil {
		return 0, errNilReader
	}
	if l.closed {
		return 0, ErrClosed
	}
	buf := make([]byte, readerBufferSize)
	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			total += int64(n)
			if _, werr := l.Write(buf[:n]); werr != nil {
				return total, werr
			}
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, fmt.Errorf("read markup: %w", err)
		}
	}
}

// Tokens lexes r and yields events in emission order.
// Trailing text is flushed at EOF. A read error is yielded once and ends the
// sequence. Breaking out of the loop stops reading.
func Tokens(r io.Reader, opts ...Options) iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		if r == nil {
			yield(Event{}, errNilReader)
			return
		}
		lx := New(opts...)
		var pending []Event
		lx.Subscribe(func(ev Event) {
			pending = append(pending, ev)
		})
		drain := func() bool {
			for _, ev := range pending {
				if !yield(ev, nil) {
					pending = pending[:0]
					return false
				}
			}
			pending = pending[:0]
			return true
		}

		buf := make([]byte, readerBufferSize)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				_, _ = lx.Write(buf[:n])
				if !drain() {
					return
				}
			}
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				yield(Event{}, fmt.Errorf("read markup: %w", err))
				return
			}
		}
		_ = lx.Close()
		drain()
	}
}
