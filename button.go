package bulma

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ButtonProps configures a Button.
type ButtonProps struct {
	Base
	// Color defaults to ColorPrimary. Use ColorNone for a plain button.
	Color     Color
	Size      Size
	Outlined  bool
	Inverted  bool
	Rounded   bool
	Loading   bool
	Disabled  bool
	FullWidth bool
	// Type is the button type attribute ("submit", "reset", "button").
	// Unset leaves the browser default.
	Type  string
	Name  string
	Value string
	// Href or To render the button as an anchor. To takes precedence.
	Href string
	To   Link
	// OnClick is bound unless the button is disabled or loading.
	OnClick Action
}

func (p ButtonProps) classes() Classes {
	return NewClasses("button").
		Add(p.Color.or(ColorPrimary).Class(), p.Size.Class()).
		AddIf(p.Outlined, "is-outlined").
		AddIf(p.Inverted, "is-inverted").
		AddIf(p.Rounded, "is-rounded").
		AddIf(p.Loading, "is-loading").
		AddIf(p.FullWidth, "is-fullwidth")
}

// Button renders a Bulma button.
//
// A disabled or loading button swallows clicks: OnClick is not bound and,
// when the button is a link, neither is its navigation.
//
//	bulma.Button(bulma.ButtonProps{
//	    Color:   bulma.ColorDanger,
//	    OnClick: bulma.Request(http.MethodDelete, "/items/1").Confirm("Delete?"),
//	}, bulma.Text("Delete"))
func Button(props ButtonProps, children ...templ.Component) templ.Component {
	guarded := props.Disabled || props.Loading
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		if linked(props.To, props.Href) {
			a := newElement("a").base(props.Base, props.classes())
			if !guarded {
				a.navigate(props.To, props.Href)
			}
			a.set("disabled", props.Disabled)
			a.onUnless(guarded, "click", props.OnClick)
			return a.render(ctx, w, body)
		}
		return newElement("button").
			base(props.Base, props.classes()).
			set("type", props.Type).
			set("name", props.Name).
			set("value", props.Value).
			set("disabled", props.Disabled).
			onUnless(guarded, "click", props.OnClick).
			render(ctx, w, body)
	})
}

// ButtonsProps configures a Buttons group.
type ButtonsProps struct {
	Base
	Size      Size
	Alignment Alignment
	// Addons attaches the buttons to each other.
	Addons bool
}

// Buttons groups buttons, applying a shared size and alignment.
func Buttons(props ButtonsProps, children ...templ.Component) templ.Component {
	classes := NewClasses("buttons").
		Add(buttonsSizeClass(props.Size), props.Alignment.Class()).
		AddIf(props.Addons, "has-addons")
	return container("div", classes, props.Base, children)
}

// buttonsSizeClass maps a size to the group form, e.g. "are-large".
func buttonsSizeClass(s Size) string {
	if c := s.Class(); c != "" {
		return "are-" + string(s)
	}
	return ""
}

// DeleteProps configures a Delete button.
type DeleteProps struct {
	Base
	Size    Size
	OnClick Action
	// Label is the accessible name, "delete" when empty.
	Label string
}

// Delete renders Bulma's small cross button.
func Delete(props DeleteProps) templ.Component {
	label := props.Label
	if label == "" {
		label = "delete"
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return newElement("button").
			base(props.Base, NewClasses("delete", props.Size.Class())).
			set("aria-label", label).
			on("click", props.OnClick).
			render(ctx, w)
	})
}
