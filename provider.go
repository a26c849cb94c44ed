package bulma

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Asset locations used by Provider and Document.
const (
	// BulmaCSS is the Bulma stylesheet the components are written against.
	BulmaCSS = "https://cdn.jsdelivr.net/npm/bulma@1.0.0/css/bulma.min.css"
	// HTMXScript is the htmx build Actions and Links are written against.
	HTMXScript = "https://unpkg.com/htmx.org@2.0.4"
	// FontAwesomeCSS provides the "fas fa-*" glyphs used by File and Icon examples.
	FontAwesomeCSS = "https://use.fontawesome.com/releases/v6.5.1/css/all.css"
)

// ProviderProps configures a Provider.
type ProviderProps struct {
	Base
	Theme Theme
	// NoStylesheet skips the stylesheet link, for pages that load Bulma themselves.
	NoStylesheet bool
	// Stylesheet overrides BulmaCSS, e.g. for a self-hosted or customized build.
	Stylesheet string
}

// Provider is the root wrapper of a Bulma page fragment. It links the
// stylesheet and applies the theme class to a full-height div.
func Provider(props ProviderProps, children ...templ.Component) templ.Component {
	style := "min-height: 100vh;"
	if props.Style != "" {
		style += " " + props.Style
	}
	b := props.Base
	b.Style = style
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		if !props.NoStylesheet {
			if err := stylesheet(props.Stylesheet).Render(ctx, w); err != nil {
				return err
			}
		}
		return newElement("div").base(b, NewClasses(props.Theme.Class())).render(ctx, w, body)
	})
}

func stylesheet(href string) templ.Component {
	if href == "" {
		href = BulmaCSS
	}
	return newElement("link").set("rel", "stylesheet").href(href).component()
}

// DocumentProps configures a Document.
type DocumentProps struct {
	Title string
	Theme Theme
	// Stylesheet overrides BulmaCSS.
	Stylesheet string
	// NoHTMX skips the htmx script. Actions and Links then do nothing
	// beyond plain navigation.
	NoHTMX bool
	// Icons links Font Awesome.
	Icons bool
	// Head is rendered at the end of the head element.
	Head templ.Component
}

// Document renders a complete HTML page: doctype, head with Bulma and htmx,
// and a body holding a Provider with the children.
func Document(props DocumentProps, children ...templ.Component) templ.Component {
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
			return err
		}
		head := []templ.Component{
			newElement("meta").set("charset", "utf-8").component(),
			newElement("meta").set("name", "viewport").set("content", "width=device-width, initial-scale=1").component(),
			newElement("title").component(Text(props.Title)),
			stylesheet(props.Stylesheet),
		}
		if props.Icons {
			head = append(head, stylesheet(FontAwesomeCSS))
		}
		if !props.NoHTMX {
			head = append(head, newElement("script").set("src", HTMXScript).component())
		}
		head = append(head, props.Head)

		page := Provider(ProviderProps{Theme: props.Theme, NoStylesheet: true}, body)
		return newElement("html").
			set("lang", "en").
			render(ctx, w, newElement("head").component(head...), newElement("body").component(page))
	})
}
