package templater

import "strings"

// NotAvailable is substituted for a placeholder whose accessor reports no
// value.
const NotAvailable = "NA"

// Render parses text and renders it against obj. It is equivalent to
// [Parse] followed by [Registry.RenderTemplate]; parse errors are returned
// unchanged.
func (r *Registry[T]) Render(obj T, text string) (string, error) {
	tmpl, err := Parse(text)
	if err != nil {
		return "", err
	}
	return r.RenderTemplate(obj, tmpl)
}

// RenderTemplate resolves every element of tmpl against obj and returns the
// concatenation. Accessors are called once per placeholder occurrence, in
// template order.
//
// The first placeholder with no binding aborts the render with an
// [UnknownSelectorError]; no partial output is returned.
func (r *Registry[T]) RenderTemplate(obj T, tmpl Template) (string, error) {
	var sb strings.Builder
	for _, e := range tmpl.elements {
		if e.Kind == Literal {
			sb.WriteString(e.Text)
			continue
		}
		a, ok := r.lookup(e.Text)
		if !ok {
			return "", &UnknownSelectorError{Selector: e.Text}
		}
		if v, ok := a.Access(obj); ok {
			sb.WriteString(v)
		} else {
			sb.WriteString(NotAvailable)
		}
	}
	return sb.String(), nil
}

// Check reports the first placeholder in tmpl that has no binding, as an
// [UnknownSelectorError]. No accessors are invoked. A nil result only holds
// until the registry is next mutated.
func (r *Registry[T]) Check(tmpl Template) error {
	for _, e := range tmpl.elements {
		if e.Kind != Placeholder {
			continue
		}
		if !r.Has(e.Text) {
			return &UnknownSelectorError{Selector: e.Text}
		}
	}
	return nil
}
