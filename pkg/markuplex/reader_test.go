package markuplex

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const readerDoc = `<?xml version="1.0"?>
<feed lang=en>
  <entry id='1'><title>First</title></entry>
  <entry id="2"><title><![CDATA[Second <b>]]></title></entry>
</feed>
trailing`

var readerDocEvents = []Event{
	open("feed"), attrName("lang"), attrValue("en"),
	open("entry"), attrName("id"), attrValue("1"),
	open("title"), text("First"), closeTag("title"),
	closeTag("entry"),
	open("entry"), attrName("id"), attrValue("2"),
	open("title"), text("Second <b>"), closeTag("title"),
	closeTag("entry"),
	closeTag("feed"),
}

func TestLexerReadFrom(t *testing.T) {
	var got []Event
	lx := New()
	lx.Subscribe(func(ev Event) { got = append(got, ev) })

	n, err := lx.ReadFrom(iotest.OneByteReader(strings.NewReader(readerDoc)))
	require.NoError(t, err)
	assert.Equal(t, int64(len(readerDoc)), n)
	assert.Equal(t, readerDocEvents, got)

	require.NoError(t, lx.Close())
	assert.Equal(t, text("trailing"), got[len(got)-1])
}

func TestLexerReadFromErrors(t *testing.T) {
	boom := errors.New("boom")

	lx := New()
	_, err := lx.ReadFrom(nil)
	assert.ErrorIs(t, err, errNilReader)

	var got []Event
	lx.Subscribe(func(ev Event) { got = append(got, ev) })
	n, err := lx.ReadFrom(io.MultiReader(strings.NewReader("<a>"), iotest.ErrReader(boom)))
	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "read markup: boom")
	assert.Equal(t, int64(3), n)
	assert.Equal(t, []Event{open("a")}, got)

	require.NoError(t, lx.Close())
	_, err = lx.ReadFrom(strings.NewReader("<b>"))
	assert.ErrorIs(t, err, ErrClosed)
}

func TestLexerReadFromDataErrReader(t *testing.T) {
	var got []Event
	lx := New()
	lx.Subscribe(func(ev Event) { got = append(got, ev) })

	_, err := lx.ReadFrom(iotest.DataErrReader(strings.NewReader("<a b=c/>")))
	require.NoError(t, err)
	assert.Equal(t, []Event{open("a"), attrName("b"), attrValue("c"), closeTag("a")}, got)
}

func TestTokens(t *testing.T) {
	var got []Event
	for ev, err := range Tokens(iotest.HalfReader(strings.NewReader(readerDoc))) {
		require.NoError(t, err)
		got = append(got, ev)
	}
	want := append(append([]Event(nil), readerDocEvents...), text("trailing"))
	assert.Equal(t, want, got)
}

func TestTokensStopsEarly(t *testing.T) {
	var got []Event
	for ev, err := range Tokens(strings.NewReader(readerDoc)) {
		require.NoError(t, err)
		got = append(got, ev)
		if ev.Kind == KindCloseTag {
			break
		}
	}
	assert.Equal(t, readerDocEvents[:9], got)
}

func TestTokensReadError(t *testing.T) {
	boom := errors.New("boom")
	var got []Event
	var errs []error
	for ev, err := range Tokens(io.MultiReader(strings.NewReader("<a>x"), iotest.ErrReader(boom))) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = append(got, ev)
	}
	assert.Equal(t, []Event{open("a")}, got)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], boom)
}

func TestTokensNilReader(t *testing.T) {
	var errs []error
	for _, err := range Tokens(nil) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], errNilReader)
}
