package markuplex

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestLexerInstancesConcurrent(t *testing.T) {
	const goroutines = 8
	const iterations = 25

	want := lexChunks(t, readerDoc)

	results := make([][]Event, goroutines)
	var g errgroup.Group
	for i := range goroutines {
		g.Go(func() error {
			for j := range iterations {
				var got []Event
				lx := New()
				lx.Subscribe(func(ev Event) { got = append(got, ev) })
				for _, chunk := range strings.SplitAfter(readerDoc, ">") {
					if _, err := lx.WriteString(chunk); err != nil {
						return fmt.Errorf("goroutine %d iteration %d: %w", i, j, err)
					}
				}
				results[i] = got
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, got := range results {
		assert.Equal(t, want, got, "goroutine %d", i)
	}
}
