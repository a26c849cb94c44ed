package bulma

import (
	"bytes"
	"context"
	"io"
	"sort"

	"github.com/a-h/templ"
)

// voidElements never have children or a closing tag.
var voidElements = map[string]bool{
	"input": true,
	"hr":    true,
	"link":  true,
	"meta":  true,
	"img":   true,
	"br":    true,
}

// element is an HTML element under construction.
//
// Attributes render in insertion order: id, class and style first (via
// base), then the component's own attributes, then event bindings, then the
// caller's extra attributes sorted by key. An extra attribute whose key was
// already written by the component replaces that value in place.
type element struct {
	tag      string
	attrs    templ.OrderedAttributes
	bindings bindings
	extra    templ.Attributes
}

func newElement(tag string) *element {
	return &element{tag: tag}
}

// set records an attribute. Empty strings, false booleans and nil values
// are skipped so optional attributes can be passed unconditionally.
func (e *element) set(key string, value any) *element {
	switch v := value.(type) {
	case nil:
		return e
	case string:
		if v == "" {
			return e
		}
	case bool:
		if !v {
			return e
		}
	}
	e.attrs = append(e.attrs, templ.KV(key, value))
	return e
}

// setString records a string attribute even when it is empty.
// Used for value attributes where "" is meaningful.
func (e *element) setString(key, value string) *element {
	e.attrs = append(e.attrs, templ.KV[string, any](key, value))
	return e
}

// href records a sanitized URL attribute.
func (e *element) href(url string) *element {
	if url == "" {
		return e
	}
	return e.set("href", string(templ.URL(url)))
}

// base applies the shared escape hatches around the component's classes.
// The caller's class override is appended last.
func (e *element) base(b Base, classes Classes) *element {
	e.set("id", b.ID)
	e.set("class", classes.Add(b.Class).String())
	e.set("style", b.Style)
	e.extra = b.Attrs
	return e
}

// on binds a to a DOM event. Zero actions are ignored.
func (e *element) on(event string, a Action) *element {
	e.bindings = e.bindings.add(event, a)
	return e
}

// onUnless binds a unless the guard holds. A guarded event is swallowed:
// nothing is bound, so activating the element does nothing.
func (e *element) onUnless(guard bool, event string, a Action) *element {
	if guard {
		return e
	}
	return e.on(event, a)
}

// navigate makes the element a link to l, or to href when l is zero.
// Link takes precedence over a plain href.
func (e *element) navigate(l Link, href string) *element {
	if !l.IsZero() {
		e.href(l.Path)
		e.bindings = e.bindings.add("click", l.action())
		return e
	}
	return e.href(href)
}

func (e *element) items() []templ.KeyValue[string, any] {
	own := make([]templ.KeyValue[string, any], 0, len(e.attrs)+len(e.extra)+4)
	own = append(own, e.attrs...)
	own = append(own, e.bindings.attributes()...)
	if len(e.extra) == 0 {
		return own
	}

	used := make(map[string]bool, len(e.extra))
	for i, kv := range own {
		if v, ok := e.extra[kv.Key]; ok {
			own[i].Value = v
			used[kv.Key] = true
		}
	}
	keys := make([]string, 0, len(e.extra))
	for k := range e.extra {
		if !used[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		own = append(own, templ.KV(k, e.extra[k]))
	}
	return own
}

// render writes the element with the given children.
func (e *element) render(ctx context.Context, w io.Writer, children ...templ.Component) error {
	if _, err := io.WriteString(w, "<"+e.tag); err != nil {
		return err
	}
	if err := templ.RenderAttributes(ctx, w, templ.OrderedAttributes(e.items())); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if voidElements[e.tag] {
		return nil
	}
	for _, c := range children {
		if c == nil {
			continue
		}
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+e.tag+">")
	return err
}

// component wraps the element as a templ.Component for nesting.
func (e *element) component(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return e.render(ctx, w, children...)
	})
}

// shell resolves a component's children and hands them to fn as a single body.
//
// Children passed explicitly from Go win. Otherwise the templ block children
// (@bulma.Box(props) { ... }) are used. Block children are cleared from the
// context before fn runs so nested components do not render them again.
func shell(children []templ.Component, fn func(ctx context.Context, w io.Writer, body templ.Component) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var body templ.Component
		if len(children) > 0 {
			body = Group(children...)
		} else {
			body = templ.GetChildren(ctx)
		}
		ctx = templ.ClearChildren(ctx)
		return fn(ctx, w, body)
	})
}

// container renders the common shape: one element, one class list, children inside.
func container(tag string, classes Classes, b Base, children []templ.Component) templ.Component {
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		return newElement(tag).base(b, classes).render(ctx, w, body)
	})
}

// shellFallback is shell with a substitute body for when the children
// render nothing. A nil fallback behaves exactly like shell.
func shellFallback(children []templ.Component, fallback templ.Component, fn func(ctx context.Context, w io.Writer, body templ.Component) error) templ.Component {
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		if fallback == nil {
			return fn(ctx, w, body)
		}
		var buf bytes.Buffer
		if err := body.Render(ctx, &buf); err != nil {
			return err
		}
		if buf.Len() == 0 {
			return fn(ctx, w, fallback)
		}
		return fn(ctx, w, templ.Raw(buf.String()))
	})
}

// leaf renders a single childless element.
func leaf(tag string, classes Classes, b Base) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return newElement(tag).base(b, classes).render(ctx, w)
	})
}
