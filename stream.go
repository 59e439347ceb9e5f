package templater

import (
	"io"
	"iter"
)

// WriteIter renders tmpl against items from an iterator and writes each
// line to w as soon as it is rendered. Iteration stops at the first render
// or write error. Lines for earlier items remain written; the failing item
// writes nothing.
func WriteIter[T any](w io.Writer, reg *Registry[T], tmpl Template, seq iter.Seq[T]) error {
	var streamErr error
	seq(func(item T) bool {
		line, err := reg.RenderTemplate(item, tmpl)
		if err != nil {
			streamErr = err
			return false
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// WriteChan renders items received from ch and writes them to w.
// It is a thin wrapper around [WriteIter]. On error the channel is not
// drained.
func WriteChan[T any](w io.Writer, reg *Registry[T], tmpl Template, ch <-chan T) error {
	return WriteIter(w, reg, tmpl, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := <-ch
			if !ok || !yield(item) {
				return
			}
		}
	}
}
