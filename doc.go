// Package templater renders format strings with named placeholders against
// values of any type.
//
// A format string mixes literal text with %(selector) placeholders. [Parse]
// turns it into a reusable [Template]; a [Registry] maps each selector to an
// [Accessor] that reads a value from the target object:
//
//	reg := templater.NewBuilder[Book]().
//		WithSelector("id", func(b Book) (string, bool) { return strconv.Itoa(b.ID), true }).
//		WithSelector("title", func(b Book) (string, bool) { return b.Title, true }).
//		Build()
//
//	out, err := reg.Render(book, "[%(id)] %(title)")
//
// # Syntax
//
// Format strings are read as grapheme clusters, so any Unicode text is
// handled as whole user-perceived characters.
//
//   - "%%" is a literal "%"
//   - "%(name)" is a placeholder; the selector is everything up to the first
//     ")" and may be empty. There is no escaping inside a selector, so a
//     selector can never contain ")".
//   - any other use of "%" is an error
//
// # Rendering
//
// [Registry.RenderTemplate] concatenates literals and accessor values in
// template order. A placeholder with no binding fails the whole render. An
// accessor that reports no value renders as [NotAvailable] ("NA").
//
// Parse once and reuse the [Template]; rendering does not mutate it or the
// registry, so both can be shared by many goroutines once the registry is
// built.
//
// # Accessors
//
// Any func(T) (string, bool) works via [AccessorFunc]. Helpers cover common
// shapes:
//
//   - [Field] — value is always present
//   - [Optional] — nil *string is no value
//   - [Stringer] — nil [fmt.Stringer] is no value
//   - [Truncate] — cap display width with "..."
//   - [Align] — pad to a display width
//
// # Output
//
// [Write] and [Marshal] render one line per item. [WriteIter] and
// [WriteChan] stream lines as items arrive.
//
// # Template Sets
//
// A [Set] holds named templates and loads from YAML with [LoadSet]:
//
//	short: "%(id)"
//	long: "[%(id)] %(title)"
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnexpectedCharacter] — "%" followed by something other than "%" or "("
//   - [ErrUnexpectedEnd] — trailing "%" or unterminated placeholder
//   - [ErrUnknownSelector] — placeholder with no binding
//   - [ErrUnknownTemplate] — name not found in a [Set]
//
// The first three wrap typed errors ([UnexpectedCharacterError],
// [UnexpectedEndError], [UnknownSelectorError]) that carry the offending
// input.
package templater
