package bulma

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Menu renders a vertical navigation menu.
func Menu(b Base, children ...templ.Component) templ.Component {
	return container("aside", NewClasses("menu"), b, children)
}

// MenuLabel renders a section heading inside a Menu.
func MenuLabel(b Base, children ...templ.Component) templ.Component {
	return container("p", NewClasses("menu-label"), b, children)
}

// MenuList renders a list of MenuItems. It can be nested as a MenuItem's Sub.
func MenuList(b Base, children ...templ.Component) templ.Component {
	return container("ul", NewClasses("menu-list"), b, children)
}

// MenuItemProps configures a MenuItem.
type MenuItemProps struct {
	Base
	Active  bool
	Href    string
	To      Link
	OnClick Action
	// Sub is a nested MenuList rendered below the item.
	Sub templ.Component
}

// MenuItem renders one menu entry. Base applies to the anchor.
func MenuItem(props MenuItemProps, children ...templ.Component) templ.Component {
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		a := newElement("a").
			base(props.Base, NewClasses().AddIf(props.Active, "is-active")).
			navigate(props.To, props.Href).
			on("click", props.OnClick)
		if props.Active {
			a.set("aria-current", "page")
		}
		return newElement("li").render(ctx, w, a.component(body), props.Sub)
	})
}

// PanelProps configures a Panel.
type PanelProps struct {
	Base
	Color Color
}

// Panel renders a compact list container with a heading, tabs and blocks.
func Panel(props PanelProps, children ...templ.Component) templ.Component {
	return container("nav", NewClasses("panel", props.Color.Class()), props.Base, children)
}

// PanelHeading renders the title of a Panel.
func PanelHeading(b Base, children ...templ.Component) templ.Component {
	return container("p", NewClasses("panel-heading"), b, children)
}

// PanelTabs renders the filter tabs of a Panel. Children are anchors.
func PanelTabs(b Base, children ...templ.Component) templ.Component {
	return container("p", NewClasses("panel-tabs"), b, children)
}

// PanelBlockProps configures a PanelBlock.
type PanelBlockProps struct {
	Base
	Active  bool
	Href    string
	To      Link
	OnClick Action
}

// PanelBlock renders one row of a Panel, an anchor when it has a
// destination and a div otherwise.
func PanelBlock(props PanelBlockProps, children ...templ.Component) templ.Component {
	classes := NewClasses("panel-block").AddIf(props.Active, "is-active")
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		tag := "div"
		if linked(props.To, props.Href) {
			tag = "a"
		}
		return newElement(tag).
			base(props.Base, classes).
			navigate(props.To, props.Href).
			on("click", props.OnClick).
			render(ctx, w, body)
	})
}

// PanelIconProps configures a PanelIcon.
type PanelIconProps struct {
	Base
	// Name is the icon font class list, used when there are no children.
	Name string
}

// PanelIcon renders the icon at the start of a PanelBlock.
func PanelIcon(props PanelIconProps, children ...templ.Component) templ.Component {
	var fallback templ.Component
	if props.Name != "" {
		fallback = newElement("i").set("class", props.Name).set("aria-hidden", "true").component()
	}
	return shellFallback(children, fallback, func(ctx context.Context, w io.Writer, body templ.Component) error {
		return newElement("span").base(props.Base, NewClasses("panel-icon")).render(ctx, w, body)
	})
}
