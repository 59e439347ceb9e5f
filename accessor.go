package templater

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls how [Align] pads a value.
type Alignment int

const (
	AlignLeft   Alignment = iota // pad on the right
	AlignCenter                  // split padding, extra space on the right
	AlignRight                   // pad on the left
)

// Field returns an accessor whose value is always present.
func Field[T any](fn func(obj T) string) Accessor[T] {
	return AccessorFunc[T](func(obj T) (string, bool) {
		return fn(obj), true
	})
}

// Optional returns an accessor that treats a nil pointer as no value.
func Optional[T any](fn func(obj T) *string) Accessor[T] {
	return AccessorFunc[T](func(obj T) (string, bool) {
		p := fn(obj)
		if p == nil {
			return "", false
		}
		return *p, true
	})
}

// Stringer returns an accessor that formats a [fmt.Stringer]. A nil
// Stringer is no value.
func Stringer[T any](fn func(obj T) fmt.Stringer) Accessor[T] {
	return AccessorFunc[T](func(obj T) (string, bool) {
		s := fn(obj)
		if s == nil {
			return "", false
		}
		return s.String(), true
	})
}

// Truncate limits the display width of a's values to width columns.
// Values that exceed it end in "..." when width is greater than 3.
// A width of zero or less leaves values unchanged. Missing values stay
// missing.
func Truncate[T any](a Accessor[T], width int) Accessor[T] {
	return AccessorFunc[T](func(obj T) (string, bool) {
		v, ok := a.Access(obj)
		if !ok {
			return "", false
		}
		return truncateCell(v, width), true
	})
}

// Align pads a's values with spaces to width display columns.
// Wider values are returned unchanged. Missing values stay missing.
func Align[T any](a Accessor[T], width int, align Alignment) Accessor[T] {
	return AccessorFunc[T](func(obj T) (string, bool) {
		v, ok := a.Access(obj)
		if !ok {
			return "", false
		}
		return alignCell(v, width, align), true
	})
}

func truncateCell(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

func alignCell(s string, width int, align Alignment) string {
	switch align {
	case AlignRight:
		return runewidth.FillLeft(s, width)
	case AlignCenter:
		left := max(width-runewidth.StringWidth(s), 0) / 2
		return strings.Repeat(" ", left) + runewidth.FillRight(s, width-left)
	default:
		return runewidth.FillRight(s, width)
	}
}
