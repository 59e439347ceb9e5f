package templater

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Set is a named collection of templates, typically loaded from a YAML
// document that maps names to format strings:
//
//	short: "%(id)"
//	long: "[%(id)] %(title) by %(author)"
type Set map[string]Template

// LoadSet decodes a YAML mapping of names to format strings. Each format
// string is parsed; the first parse failure is returned and can be
// inspected with errors.As.
func LoadSet(r io.Reader) (Set, error) {
	var s Set
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Set{}, nil
		}
		return nil, fmt.Errorf("load template set: %w", err)
	}
	if s == nil {
		s = Set{}
	}
	return s, nil
}

// WriteSet encodes s as a YAML mapping of names to format strings.
func WriteSet(w io.Writer, s Set) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(map[string]Template(s)); err != nil {
		return err
	}
	return enc.Close()
}

// Lookup returns the template registered under name.
func (s Set) Lookup(name string) (Template, error) {
	t, ok := s[name]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return t, nil
}

// Names returns the template names in sorted order.
func (s Set) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

// MarshalYAML implements [yaml.Marshaler]. A template is encoded as its
// format string.
func (t Template) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler]. The node must be a scalar
// format string.
func (t *Template) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: template must be a string", value.Line)
	}
	var text string
	if err := value.Decode(&text); err != nil {
		return err
	}
	parsed, err := Parse(text)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
