package bulma

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// DropdownProps configures a Dropdown.
type DropdownProps struct {
	Base
	Active    bool
	Hoverable bool
	// Right aligns the menu to the right edge of the trigger.
	Right bool
	// Up opens the menu above the trigger.
	Up bool
}

// Dropdown renders a dropdown container holding a DropdownTrigger and a DropdownMenu.
func Dropdown(props DropdownProps, children ...templ.Component) templ.Component {
	classes := NewClasses("dropdown").
		AddIf(props.Active, "is-active").
		AddIf(props.Hoverable, "is-hoverable").
		AddIf(props.Right, "is-right").
		AddIf(props.Up, "is-up")
	return container("div", classes, props.Base, children)
}

// toggleDropdown opens or closes the enclosing dropdown in the browser.
const toggleDropdown = "this.closest('.dropdown').classList.toggle('is-active')"

// DropdownTriggerProps configures a DropdownTrigger.
type DropdownTriggerProps struct {
	Base
	// OnClick replaces the default in-browser toggle of the enclosing dropdown.
	OnClick Action
}

// DropdownTrigger wraps the button that opens a Dropdown.
func DropdownTrigger(props DropdownTriggerProps, children ...templ.Component) templ.Component {
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		return newElement("div").
			base(props.Base, NewClasses("dropdown-trigger")).
			on("click", orScript(props.OnClick, toggleDropdown)).
			render(ctx, w, body)
	})
}

// DropdownMenu renders the menu of a Dropdown. Children are DropdownItems
// and DropdownDividers, wrapped in the dropdown-content box.
func DropdownMenu(b Base, children ...templ.Component) templ.Component {
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		content := newElement("div").set("class", "dropdown-content").component(body)
		return newElement("div").
			base(b, NewClasses("dropdown-menu")).
			set("role", "menu").
			render(ctx, w, content)
	})
}

// DropdownItemProps configures a DropdownItem.
type DropdownItemProps struct {
	Base
	Active  bool
	Href    string
	To      Link
	OnClick Action
}

// DropdownItem renders one entry of a DropdownMenu, an anchor when it has a
// destination and a div otherwise.
func DropdownItem(props DropdownItemProps, children ...templ.Component) templ.Component {
	classes := NewClasses("dropdown-item").AddIf(props.Active, "is-active")
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

// DropdownDivider separates groups of DropdownItems.
func DropdownDivider(b Base) templ.Component {
	return leaf("hr", NewClasses("dropdown-divider"), b)
}
