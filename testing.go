package bulma

import (
	"bytes"
	"context"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TestResult holds the output of rendering a component for testing.
//
// Besides substring checks on the raw HTML it exposes the parsed element
// tree, so tests can assert on structure without depending on attribute
// order or whitespace:
//
//	result, err := bulma.TestRender(bulma.Button(bulma.ButtonProps{Size: bulma.SizeLarge}))
//	btn := result.First("button")
//	if !btn.HasClass("is-large") { ... }
type TestResult struct {
	HTML  string
	nodes []*TestNode
}

// TestNode is one element of rendered output.
type TestNode struct {
	Tag      string
	Attrs    map[string]string
	Children []*TestNode
	text     string
}

// TestRender renders a component and parses the output.
func TestRender(c templ.Component) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), c)
}

// TestRenderWithContext renders a component with a custom context, for
// components that read request-scoped values or templ block children:
//
//	ctx := templ.WithChildren(context.Background(), bulma.Text("body"))
//	result, err := bulma.TestRenderWithContext(ctx, bulma.Box(bulma.Base{}))
func TestRenderWithContext(ctx context.Context, c templ.Component) (*TestResult, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, err
	}
	result := &TestResult{HTML: buf.String()}

	parsed, err := html.ParseFragment(strings.NewReader(result.HTML), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, err
	}
	for _, n := range parsed {
		if tn := convertNode(n); tn != nil {
			result.nodes = append(result.nodes, tn)
		}
	}
	return result, nil
}

func convertNode(n *html.Node) *TestNode {
	switch n.Type {
	case html.TextNode:
		return &TestNode{text: n.Data}
	case html.ElementNode:
	default:
		return nil
	}
	tn := &TestNode{Tag: n.Data, Attrs: make(map[string]string, len(n.Attr))}
	for _, a := range n.Attr {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}
		tn.Attrs[key] = a.Val
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := convertNode(c); child != nil {
			tn.Children = append(tn.Children, child)
		}
	}
	return tn
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// Root returns the first top-level element, or nil if there is none.
func (r *TestResult) Root() *TestNode {
	for _, n := range r.nodes {
		if n.Tag != "" {
			return n
		}
	}
	return nil
}

// Find returns every element matching selector, in document order.
//
// Selectors are a tag name, one or more ".class" parts, or both:
// "button", ".delete", "span.tag.is-rounded".
func (r *TestResult) Find(selector string) []*TestNode {
	var out []*TestNode
	for _, n := range r.nodes {
		out = append(out, n.Find(selector)...)
	}
	return out
}

// First returns the first element matching selector, or nil.
func (r *TestResult) First(selector string) *TestNode {
	if found := r.Find(selector); len(found) > 0 {
		return found[0]
	}
	return nil
}

// Count returns the number of elements matching selector.
func (r *TestResult) Count(selector string) int {
	return len(r.Find(selector))
}

// Find returns n and its descendants matching selector, in document order.
func (n *TestNode) Find(selector string) []*TestNode {
	if n == nil {
		return nil
	}
	tag, classes := parseSelector(selector)
	var out []*TestNode
	var walk func(*TestNode)
	walk = func(c *TestNode) {
		if c.Tag == "" {
			return
		}
		if c.matches(tag, classes) {
			out = append(out, c)
		}
		for _, child := range c.Children {
			walk(child)
		}
	}
	walk(n)
	return out
}

// First returns the first match within n, or nil.
func (n *TestNode) First(selector string) *TestNode {
	if found := n.Find(selector); len(found) > 0 {
		return found[0]
	}
	return nil
}

// Elements returns the element children of n, skipping text.
func (n *TestNode) Elements() []*TestNode {
	if n == nil {
		return nil
	}
	var out []*TestNode
	for _, c := range n.Children {
		if c.Tag != "" {
			out = append(out, c)
		}
	}
	return out
}

// Attr returns an attribute value and whether it is present.
func (n *TestNode) Attr(key string) (string, bool) {
	if n == nil {
		return "", false
	}
	v, ok := n.Attrs[key]
	return v, ok
}

// HasAttr reports whether the attribute is present.
func (n *TestNode) HasAttr(key string) bool {
	_, ok := n.Attr(key)
	return ok
}

// Class returns the raw class attribute.
func (n *TestNode) Class() string {
	v, _ := n.Attr("class")
	return v
}

// Classes returns the class tokens.
func (n *TestNode) Classes() []string {
	return strings.Fields(n.Class())
}

// HasClass reports whether every given class is present.
func (n *TestNode) HasClass(classes ...string) bool {
	if n == nil {
		return false
	}
	have := n.Classes()
	for _, want := range classes {
		found := false
		for _, c := range have {
			if c == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Text returns the concatenated text content of n.
func (n *TestNode) Text() string {
	if n == nil {
		return ""
	}
	if n.Tag == "" {
		return n.text
	}
	var sb strings.Builder
	for _, c := range n.Children {
		sb.WriteString(c.Text())
	}
	return sb.String()
}

func (n *TestNode) matches(tag string, classes []string) bool {
	if tag != "" && n.Tag != tag {
		return false
	}
	return n.HasClass(classes...)
}

func parseSelector(selector string) (string, []string) {
	parts := strings.Split(selector, ".")
	var classes []string
	for _, p := range parts[1:] {
		if p != "" {
			classes = append(classes, p)
		}
	}
	return parts[0], classes
}
