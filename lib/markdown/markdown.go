// Package markdown renders Markdown documents as Bulma Content blocks.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/pthm/bulma"
)

// Options controls conversion.
type Options struct {
	// Size is the Content size modifier.
	Size bulma.Size
	// Unsafe passes raw HTML in the source through. Only use it for trusted input.
	Unsafe bool
	// TableClass is set on every table. Defaults to "table".
	TableClass string
}

func (o Options) tableClass() string {
	if o.TableClass == "" {
		return "table"
	}
	return o.TableClass
}

// Heading is one heading of a document.
type Heading struct {
	Level int
	ID    string
	Text  string
}

// tableClasser marks tables so Bulma styles them.
type tableClasser struct {
	class []byte
}

func (t tableClasser) Transform(doc *gmast.Document, _ text.Reader, _ parser.Context) {
	_ = gmast.Walk(doc, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if entering && n.Kind() == east.KindTable {
			n.SetAttributeString("class", t.class)
		}
		return gmast.WalkContinue, nil
	})
}

func newMarkdown(opts Options) goldmark.Markdown {
	rendererOpts := []renderer.Option{html.WithXHTML()}
	if opts.Unsafe {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(util.Prioritized(tableClasser{class: []byte(opts.tableClass())}, 100)),
		),
		goldmark.WithRendererOptions(rendererOpts...),
	)
}

// Convert renders src to HTML.
func Convert(src []byte, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := newMarkdown(opts).Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("markdown: convert: %w", err)
	}
	return buf.Bytes(), nil
}

// Render returns a component that renders src inside bulma.Content.
//
//	markdown.Render(readme, markdown.Options{Size: bulma.SizeMedium})
func Render(src []byte, opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := Convert(src, opts)
		if err != nil {
			return err
		}
		return bulma.Content(bulma.ContentProps{Size: opts.Size}, templ.Raw(string(out))).Render(ctx, w)
	})
}

// Headings lists the headings of src in document order with the ids
// Convert gives them.
func Headings(src []byte) []Heading {
	root := newMarkdown(Options{}).Parser().Parse(text.NewReader(src))

	var out []Heading
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		h, ok := n.(*gmast.Heading)
		if !entering || !ok {
			return gmast.WalkContinue, nil
		}
		heading := Heading{Level: h.Level, Text: plainText(h, src)}
		if id, ok := h.AttributeString("id"); ok {
			if b, ok := id.([]byte); ok {
				heading.ID = string(b)
			}
		}
		out = append(out, heading)
		return gmast.WalkSkipChildren, nil
	})
	return out
}

func plainText(n gmast.Node, src []byte) string {
	var buf bytes.Buffer
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *gmast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *gmast.String:
			buf.Write(t.Value)
		}
		return gmast.WalkContinue, nil
	})
	return buf.String()
}

// TOC renders the headings up to maxLevel as a bulma.Menu linking to their ids.
func TOC(headings []Heading, maxLevel int, label string) templ.Component {
	var items []templ.Component
	for _, h := range headings {
		if h.Level > maxLevel || h.ID == "" {
			continue
		}
		items = append(items, bulma.MenuItem(
			bulma.MenuItemProps{Href: "#" + h.ID, Base: bulma.Base{Class: fmt.Sprintf("pl-%d", h.Level)}},
			bulma.Text(h.Text),
		))
	}
	return bulma.Menu(bulma.Base{},
		bulma.When(label != "", bulma.MenuLabel(bulma.Base{}, bulma.Text(label))),
		bulma.MenuList(bulma.Base{}, items...),
	)
}
