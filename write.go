package templater

import (
	"bytes"
	"io"
)

// Write renders tmpl against each item and writes one line per item to w.
// Every item is rendered before anything is written, so a failed render
// leaves w untouched.
func Write[T any](w io.Writer, reg *Registry[T], tmpl Template, items ...T) error {
	data, err := Marshal(reg, tmpl, items...)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	_, err = w.Write(data)
	return err
}

// Marshal renders tmpl against each item and returns the lines as bytes.
func Marshal[T any](reg *Registry[T], tmpl Template, items ...T) ([]byte, error) {
	var buf bytes.Buffer
	for _, item := range items {
		line, err := reg.RenderTemplate(item, tmpl)
		if err != nil {
			return nil, err
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
