package templater

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is against these, or errors.As against the typed errors below
// to read the offending character, selector, or format string.
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnexpectedEnd       = errors.New("unexpected end of format string")
	ErrUnknownSelector     = errors.New("unknown selector")
	ErrUnknownTemplate     = errors.New("unknown template")
)

// UnexpectedCharacterError reports a '%' marker followed by something other
// than '%' or '('.
type UnexpectedCharacterError struct {
	Character string // grapheme cluster that followed the marker
	Template  string // full format string being parsed
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("%s %q in format string %q", ErrUnexpectedCharacter, e.Character, e.Template)
}

// Unwrap returns [ErrUnexpectedCharacter].
func (e *UnexpectedCharacterError) Unwrap() error { return ErrUnexpectedCharacter }

// UnexpectedEndError reports a format string that ended after a bare '%'
// or inside an unterminated placeholder.
type UnexpectedEndError struct {
	Template string
}

func (e *UnexpectedEndError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnexpectedEnd, e.Template)
}

// Unwrap returns [ErrUnexpectedEnd].
func (e *UnexpectedEndError) Unwrap() error { return ErrUnexpectedEnd }

// UnknownSelectorError reports a placeholder with no binding in the registry
// at render time.
type UnknownSelectorError struct {
	Selector string
}

func (e *UnknownSelectorError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownSelector, e.Selector)
}

// Unwrap returns [ErrUnknownSelector].
func (e *UnknownSelectorError) Unwrap() error { return ErrUnknownSelector }

var (
	_ error = (*UnexpectedCharacterError)(nil)
	_ error = (*UnexpectedEndError)(nil)
	_ error = (*UnknownSelectorError)(nil)
)
