package bulma

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// NavbarProps configures a Navbar.
type NavbarProps struct {
	Base
	Color       Color
	Transparent bool
	FixedTop    bool
	FixedBottom bool
	Spaced      bool
}

// Navbar renders the main site navigation bar.
//
//	bulma.Navbar(bulma.NavbarProps{Color: bulma.ColorDark},
//	    bulma.NavbarBrand(bulma.Base{},
//	        bulma.NavbarItem(bulma.NavbarItemProps{To: bulma.To("/")}, bulma.Text("Home")),
//	        bulma.NavbarBurger(bulma.NavbarBurgerProps{Target: "main-menu"}),
//	    ),
//	    bulma.NavbarMenu(bulma.NavbarMenuProps{Base: bulma.Base{ID: "main-menu"}},
//	        bulma.NavbarStart(bulma.Base{}, items...),
//	    ),
//	)
func Navbar(props NavbarProps, children ...templ.Component) templ.Component {
	classes := NewClasses("navbar", props.Color.Class()).
		AddIf(props.Transparent, "is-transparent").
		AddIf(props.FixedTop, "is-fixed-top").
		AddIf(props.FixedBottom, "is-fixed-bottom").
		AddIf(props.Spaced, "is-spaced")
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		return newElement("nav").
			base(props.Base, classes).
			set("role", "navigation").
			set("aria-label", "main navigation").
			render(ctx, w, body)
	})
}

// NavbarBrand holds the logo and burger, always visible.
func NavbarBrand(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("navbar-brand"), b, children)
}

// NavbarBurgerProps configures a NavbarBurger.
type NavbarBurgerProps struct {
	Base
	// Target is the id of the NavbarMenu the burger toggles.
	Target string
	Active bool
	// OnClick replaces the default in-browser toggle of the burger and its menu.
	OnClick Action
}

// toggleBurger flips the burger and the menu named by data-target.
const toggleBurger = "this.classList.toggle('is-active');" +
	"var m=document.getElementById(this.dataset.target);if(m){m.classList.toggle('is-active')}"

// NavbarBurger renders the mobile menu toggle.
func NavbarBurger(props NavbarBurgerProps) templ.Component {
	expanded := "false"
	if props.Active {
		expanded = "true"
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		line := newElement("span").set("aria-hidden", "true").component()
		return newElement("a").
			base(props.Base, NewClasses("navbar-burger").AddIf(props.Active, "is-active")).
			set("role", "button").
			set("aria-label", "menu").
			set("aria-expanded", expanded).
			set("data-target", props.Target).
			on("click", orScript(props.OnClick, toggleBurger)).
			render(ctx, w, line, line, line, line)
	})
}

// NavbarMenuProps configures a NavbarMenu.
type NavbarMenuProps struct {
	Base
	// Active shows the menu on mobile.
	Active bool
}

// NavbarMenu holds NavbarStart and NavbarEnd. It is hidden on mobile until active.
func NavbarMenu(props NavbarMenuProps, children ...templ.Component) templ.Component {
	return container("div", NewClasses("navbar-menu").AddIf(props.Active, "is-active"), props.Base, children)
}

// NavbarStart holds the items on the left of the menu.
func NavbarStart(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("navbar-start"), b, children)
}

// NavbarEnd holds the items on the right of the menu.
func NavbarEnd(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("navbar-end"), b, children)
}

// NavbarItemProps configures a NavbarItem.
type NavbarItemProps struct {
	Base
	Active bool
	// Hoverable opens a nested NavbarDropdown on hover.
	Hoverable bool
	// HasDropdown marks an item containing a NavbarLink and NavbarDropdown.
	HasDropdown bool
	Href        string
	To          Link
	OnClick     Action
}

// NavbarItem renders one navbar entry, an anchor when it has a destination
// and a div otherwise.
func NavbarItem(props NavbarItemProps, children ...templ.Component) templ.Component {
	classes := NewClasses("navbar-item").
		AddIf(props.HasDropdown, "has-dropdown").
		AddIf(props.Active, "is-active").
		AddIf(props.Hoverable, "is-hoverable")
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

// NavbarLinkProps configures a NavbarLink.
type NavbarLinkProps struct {
	Base
	Href string
	To   Link
	// Arrowless hides the dropdown arrow.
	Arrowless bool
}

// NavbarLink renders the label of a dropdown NavbarItem.
func NavbarLink(props NavbarLinkProps, children ...templ.Component) templ.Component {
	classes := NewClasses("navbar-link").AddIf(props.Arrowless, "is-arrowless")
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		return newElement("a").base(props.Base, classes).navigate(props.To, props.Href).render(ctx, w, body)
	})
}

// NavbarDropdownProps configures a NavbarDropdown.
type NavbarDropdownProps struct {
	Base
	Right bool
	Boxed bool
}

// NavbarDropdown renders the menu of a dropdown NavbarItem.
func NavbarDropdown(props NavbarDropdownProps, children ...templ.Component) templ.Component {
	classes := NewClasses("navbar-dropdown").
		AddIf(props.Right, "is-right").
		AddIf(props.Boxed, "is-boxed")
	return container("div", classes, props.Base, children)
}

// NavbarDivider separates items of a NavbarDropdown.
func NavbarDivider(b Base) templ.Component {
	return leaf("hr", NewClasses("navbar-divider"), b)
}
