package templater_test

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/bjaus/templater"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errWrite = errors.New("write failed")

// errWriter fails on every write after the first n succeed.
type errWriter struct {
	n   int
	buf bytes.Buffer
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errWrite
	}
	w.n--
	return w.buf.Write(p)
}

func lineRegistry() *templater.Registry[book] {
	return templater.NewBuilder[book]().
		WithSelector("id", bookID).
		WithSelector("title", bookTitle).
		Build()
}

var lineTemplate = templater.MustParse("%(id) %(title)")

var shelf = []book{
	{ID: 1, Title: "Emma"},
	{ID: 2, Title: "Dune"},
	{ID: 3, Title: "Ulysses"},
}

// --- Write / Marshal ---

func TestWrite(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := templater.Write(&buf, lineRegistry(), lineTemplate, shelf...)
	require.NoError(t, err)
	assert.Equal(t, "1 Emma\n2 Dune\n3 Ulysses\n", buf.String())
}

func TestWriteNoItems(t *testing.T) {
	t.Parallel()
	w := &errWriter{}
	err := templater.Write(w, lineRegistry(), lineTemplate)
	assert.NoError(t, err)
}

func TestWriteErrorWritesNothing(t *testing.T) {
	t.Parallel()
	reg := lineRegistry()
	reg.Remove("title")
	var buf bytes.Buffer
	err := templater.Write(&buf, reg, lineTemplate, shelf...)
	require.ErrorIs(t, err, templater.ErrUnknownSelector)
	assert.Empty(t, buf.String())
}

func TestWriteWriterError(t *testing.T) {
	t.Parallel()
	err := templater.Write(&errWriter{}, lineRegistry(), lineTemplate, shelf...)
	assert.ErrorIs(t, err, errWrite)
}

func TestMarshal(t *testing.T) {
	t.Parallel()
	data, err := templater.Marshal(lineRegistry(), lineTemplate, shelf[0])
	require.NoError(t, err)
	assert.Equal(t, "1 Emma\n", string(data))
}

func TestMarshalError(t *testing.T) {
	t.Parallel()
	data, err := templater.Marshal(templater.NewRegistry[book](), lineTemplate, shelf...)
	require.ErrorIs(t, err, templater.ErrUnknownSelector)
	assert.Nil(t, data)
}

// --- WriteIter / WriteChan ---

func TestWriteIter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := templater.WriteIter(&buf, lineRegistry(), lineTemplate, slices.Values(shelf))
	require.NoError(t, err)
	assert.Equal(t, "1 Emma\n2 Dune\n3 Ulysses\n", buf.String())
}

func TestWriteIterStopsAtWriteError(t *testing.T) {
	t.Parallel()
	w := &errWriter{n: 1}
	seen := 0
	seq := func(yield func(book) bool) {
		for _, b := range shelf {
			seen++
			if !yield(b) {
				return
			}
		}
	}
	err := templater.WriteIter(w, lineRegistry(), lineTemplate, seq)
	require.ErrorIs(t, err, errWrite)
	assert.Equal(t, "1 Emma\n", w.buf.String())
	assert.Equal(t, 2, seen)
}

func TestWriteIterRenderError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := templater.WriteIter(&buf, templater.NewRegistry[book](), lineTemplate, slices.Values(shelf))
	require.ErrorIs(t, err, templater.ErrUnknownSelector)
	assert.Empty(t, buf.String())
}

func TestWriteChan(t *testing.T) {
	t.Parallel()
	ch := make(chan book, len(shelf))
	for _, b := range shelf {
		ch <- b
	}
	close(ch)

	var buf bytes.Buffer
	err := templater.WriteChan(&buf, lineRegistry(), lineTemplate, ch)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))
	assert.True(t, strings.HasPrefix(buf.String(), "1 Emma\n"))
}

func TestWriteChanProducer(t *testing.T) {
	t.Parallel()
	ch := make(chan book)
	go func() {
		defer close(ch)
		for _, b := range shelf {
			ch <- b
		}
	}()

	var buf bytes.Buffer
	err := templater.WriteChan(&buf, lineRegistry(), lineTemplate, ch)
	require.NoError(t, err)
	assert.Equal(t, "1 Emma\n2 Dune\n3 Ulysses\n", buf.String())
}
