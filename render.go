package bulma

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Base holds the escape hatches every component accepts.
//
// Class is appended after the component's own classes, so it can add
// helpers like "mt-4" or override modifiers. Attrs are rendered after the
// component's own attributes; a key the component already writes is
// replaced by the caller's value.
type Base struct {
	ID    string
	Class string
	Style string
	Attrs templ.Attributes
}

// Text renders s as escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Group renders components one after another. Nil entries are skipped.
func Group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range children {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// When renders c only if cond holds.
func When(cond bool, c templ.Component) templ.Component {
	if !cond || c == nil {
		return templ.NopComponent
	}
	return c
}
