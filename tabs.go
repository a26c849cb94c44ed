package bulma

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// TabsProps configures Tabs.
type TabsProps struct {
	Base
	Size      Size
	Style     TabsStyle
	Alignment Alignment
	FullWidth bool
}

// Tabs renders a tab bar. Children are Tab items.
func Tabs(props TabsProps, children ...templ.Component) templ.Component {
	classes := NewClasses("tabs", props.Size.Class(), props.Style.Class(), props.Alignment.Class()).
		AddIf(props.FullWidth, "is-fullwidth")
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		return newElement("div").base(props.Base, classes).render(ctx, w, newElement("ul").component(body))
	})
}

// TabProps configures a Tab.
type TabProps struct {
	Base
	Active   bool
	Disabled bool
	Href     string
	To       Link
	OnClick  Action
}

// Tab renders one tab. Base applies to the li.
//
// A disabled tab with a destination renders its label as plain text. A
// disabled tab without one keeps its anchor but swallows clicks.
func Tab(props TabProps, children ...templ.Component) templ.Component {
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		var inner *element
		switch {
		case linked(props.To, props.Href) && props.Disabled:
			inner = newElement("span")
		case linked(props.To, props.Href):
			inner = newElement("a").navigate(props.To, props.Href).on("click", props.OnClick)
		default:
			inner = newElement("a").onUnless(props.Disabled, "click", props.OnClick)
		}
		return newElement("li").
			base(props.Base, NewClasses().AddIf(props.Active, "is-active")).
			render(ctx, w, inner.component(body))
	})
}

// BreadcrumbProps configures a Breadcrumb.
type BreadcrumbProps struct {
	Base
	Size      Size
	Alignment Alignment
	Separator Separator
}

// Breadcrumb renders a navigation trail. Children are BreadcrumbItems.
func Breadcrumb(props BreadcrumbProps, children ...templ.Component) templ.Component {
	classes := NewClasses("breadcrumb", props.Size.Class(), props.Alignment.Class(), props.Separator.Class())
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		return newElement("nav").
			base(props.Base, classes).
			set("aria-label", "breadcrumbs").
			render(ctx, w, newElement("ul").component(body))
	})
}

// BreadcrumbItemProps configures a BreadcrumbItem.
type BreadcrumbItemProps struct {
	Base
	// Active marks the current page.
	Active  bool
	Href    string
	To      Link
	OnClick Action
}

// BreadcrumbItem renders one step of a Breadcrumb, a link when it has a
// destination and plain text otherwise.
func BreadcrumbItem(props BreadcrumbItemProps, children ...templ.Component) templ.Component {
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		inner := newElement("span")
		if linked(props.To, props.Href) {
			inner = newElement("a").navigate(props.To, props.Href)
		}
		if props.Active {
			inner.set("aria-current", "page")
		}
		inner.on("click", props.OnClick)
		return newElement("li").
			base(props.Base, NewClasses().AddIf(props.Active, "is-active")).
			render(ctx, w, inner.component(body))
	})
}
