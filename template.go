package templater

import (
	"slices"
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

const (
	marker     = "%"
	openParen  = "("
	closeParen = ")"
)

// ElementKind distinguishes the two variants of [Element].
type ElementKind int

const (
	Literal     ElementKind = iota // fixed output text
	Placeholder                    // selector resolved at render time
)

// String returns the kind name.
func (k ElementKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Placeholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Element is one piece of a parsed [Template].
// For a Literal, Text is the output text and is never empty.
// For a Placeholder, Text is the selector; it may be empty and never
// contains ')'.
type Element struct {
	Kind ElementKind
	Text string
}

// String returns the element as it would appear in a format string.
// Only grapheme clusters that are exactly "%" are escaped; a "%" fused with
// a combining mark is ordinary text to [Parse].
func (e Element) String() string {
	if e.Kind == Placeholder {
		return marker + openParen + e.Text + closeParen
	}
	var sb strings.Builder
	g := graphemes.FromString(e.Text)
	for g.Next() {
		if g.Value() == marker {
			sb.WriteString(marker)
		}
		sb.WriteString(g.Value())
	}
	return sb.String()
}

// Template is an immutable, ordered sequence of elements produced by [Parse].
// The zero value is an empty template. A Template is safe to share between
// goroutines and to render any number of times.
type Template struct {
	elements []Element
}

// Parse converts a format string into a [Template].
//
// The format string is read as a sequence of grapheme clusters:
//
//   - "%%" is a literal "%"
//   - "%(name)" is a placeholder for selector name; everything up to the
//     first ")" is taken verbatim
//   - "%" followed by anything else is an [UnexpectedCharacterError]
//   - a trailing "%" or an unterminated "%(" is an [UnexpectedEndError]
func Parse(text string) (Template, error) {
	var (
		elements []Element
		literal  strings.Builder
	)
	flush := func() {
		if literal.Len() == 0 {
			return
		}
		elements = append(elements, Element{Kind: Literal, Text: literal.String()})
		literal.Reset()
	}

	g := graphemes.FromString(text)
	for g.Next() {
		c := g.Value()
		if c != marker {
			literal.WriteString(c)
			continue
		}
		if !g.Next() {
			return Template{}, &UnexpectedEndError{Template: text}
		}
		switch c = g.Value(); c {
		case marker:
			literal.WriteString(marker)
		case openParen:
			flush()
			var selector strings.Builder
			closed := false
			for g.Next() {
				if g.Value() == closeParen {
					closed = true
					break
				}
				selector.WriteString(g.Value())
			}
			if !closed {
				return Template{}, &UnexpectedEndError{Template: text}
			}
			elements = append(elements, Element{Kind: Placeholder, Text: selector.String()})
		default:
			return Template{}, &UnexpectedCharacterError{Character: c, Template: text}
		}
	}
	flush()

	return Template{elements: elements}, nil
}

// MustParse is like [Parse] but panics on error. It is intended for
// package-level template variables.
func MustParse(text string) Template {
	t, err := Parse(text)
	if err != nil {
		panic("templater: " + err.Error())
	}
	return t
}

// Len returns the number of elements.
func (t Template) Len() int { return len(t.elements) }

// Elements returns a copy of the template's elements in render order.
func (t Template) Elements() []Element {
	return slices.Clone(t.elements)
}

// Selectors returns the distinct selectors referenced by the template, in
// order of first appearance.
func (t Template) Selectors() []string {
	var out []string
	for _, e := range t.elements {
		if e.Kind == Placeholder && !slices.Contains(out, e.Text) {
			out = append(out, e.Text)
		}
	}
	return out
}

// String returns a format string that parses back to an equivalent template.
// Literal "%" characters are escaped as "%%".
func (t Template) String() string {
	var sb strings.Builder
	for _, e := range t.elements {
		sb.WriteString(e.String())
	}
	return sb.String()
}

// MarshalText implements [encoding.TextMarshaler].
func (t Template) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *Template) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
