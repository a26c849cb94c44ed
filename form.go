package bulma

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// FieldProps configures a Field.
type FieldProps struct {
	Base
	// Grouped places controls side by side.
	Grouped bool
	// Addons attaches controls together, as in an input with a button.
	Addons bool
	// Horizontal lays the label and body out in a row. Use FieldLabel and FieldBody.
	Horizontal bool
}

// Field wraps a label, controls and help text with consistent spacing.
func Field(props FieldProps, children ...templ.Component) templ.Component {
	classes := NewClasses("field").
		AddIf(props.Grouped, "is-grouped").
		AddIf(props.Addons, "has-addons").
		AddIf(props.Horizontal, "is-horizontal")
	return container("div", classes, props.Base, children)
}

// FieldLabelProps configures a FieldLabel.
type FieldLabelProps struct {
	Base
	// Size aligns the label with controls of the same size.
	Size Size
}

// FieldLabel holds the label of a horizontal Field.
func FieldLabel(props FieldLabelProps, children ...templ.Component) templ.Component {
	return container("div", NewClasses("field-label", props.Size.Class()), props.Base, children)
}

// FieldBody holds the controls of a horizontal Field.
func FieldBody(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("field-body"), b, children)
}

// LabelProps configures a Label.
type LabelProps struct {
	Base
	// For is the id of the labelled control.
	For string
}

// Label renders a form label.
func Label(props LabelProps, children ...templ.Component) templ.Component {
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		return newElement("label").
			base(props.Base, NewClasses("label")).
			set("for", props.For).
			render(ctx, w, body)
	})
}

// HelpProps configures a Help text.
type HelpProps struct {
	Base
	Color Color
}

// Help renders the small text under a control, colored to match its state.
func Help(props HelpProps, children ...templ.Component) templ.Component {
	return container("p", NewClasses("help", props.Color.Class()), props.Base, children)
}

// ControlProps configures a Control.
type ControlProps struct {
	Base
	IconsLeft  bool
	IconsRight bool
	Loading    bool
	// Expanded lets the control fill the remaining space in a grouped Field.
	Expanded bool
	Size     Size
}

// Control wraps a single input, select or button inside a Field.
func Control(props ControlProps, children ...templ.Component) templ.Component {
	classes := NewClasses("control").
		AddIf(props.IconsLeft, "has-icons-left").
		AddIf(props.IconsRight, "has-icons-right").
		AddIf(props.Loading, "is-loading").
		AddIf(props.Expanded, "is-expanded").
		Add(props.Size.Class())
	return container("div", classes, props.Base, children)
}

// InputProps configures an Input.
type InputProps struct {
	Base
	// Type defaults to InputText.
	Type        InputType
	Name        string
	Value       string
	Placeholder string
	Color       Color
	Size        Size
	Rounded     bool
	Loading     bool
	Focused     bool
	Disabled    bool
	ReadOnly    bool
	Required    bool

	OnInput  Action
	OnChange Action
	OnFocus  Action
	OnBlur   Action
}

// Input renders a single-line text input.
//
// For live search, bind OnInput to a GET with a delay:
//
//	bulma.Input(bulma.InputProps{
//	    Name:    "q",
//	    OnInput: bulma.Get("/search").Target("#results"),
//	    Base:    bulma.Base{Attrs: templ.Attributes{"hx-trigger": "input changed delay:300ms"}},
//	})
func Input(props InputProps) templ.Component {
	classes := NewClasses("input", props.Color.Class(), props.Size.Class()).
		AddIf(props.Rounded, "is-rounded").
		AddIf(props.Loading, "is-loading").
		AddIf(props.Focused, "is-focused")
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return newElement("input").
			base(props.Base, classes).
			set("type", props.Type.String()).
			set("name", props.Name).
			set("value", props.Value).
			set("placeholder", props.Placeholder).
			set("disabled", props.Disabled).
			set("readonly", props.ReadOnly).
			set("required", props.Required).
			on("input", props.OnInput).
			on("change", props.OnChange).
			on("focus", props.OnFocus).
			on("blur", props.OnBlur).
			render(ctx, w)
	})
}

// TextareaProps configures a Textarea.
type TextareaProps struct {
	Base
	Name        string
	Value       string
	Placeholder string
	Color       Color
	Size        Size
	// FixedSize disables resizing.
	FixedSize bool
	Disabled  bool
	ReadOnly  bool
	Required  bool
	// Rows defaults to 4.
	Rows int
	Cols int

	OnInput  Action
	OnChange Action
	OnFocus  Action
	OnBlur   Action
}

// Textarea renders a multi-line text input. Value becomes its content.
func Textarea(props TextareaProps) templ.Component {
	rows := props.Rows
	if rows <= 0 {
		rows = 4
	}
	classes := NewClasses("textarea", props.Color.Class(), props.Size.Class()).
		AddIf(props.FixedSize, "has-fixed-size")
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		el := newElement("textarea").
			base(props.Base, classes).
			set("name", props.Name).
			set("placeholder", props.Placeholder).
			set("rows", strconv.Itoa(rows))
		if props.Cols > 0 {
			el.set("cols", strconv.Itoa(props.Cols))
		}
		return el.
			set("disabled", props.Disabled).
			set("readonly", props.ReadOnly).
			set("required", props.Required).
			on("input", props.OnInput).
			on("change", props.OnChange).
			on("focus", props.OnFocus).
			on("blur", props.OnBlur).
			render(ctx, w, Text(props.Value))
	})
}

// SelectOption is one entry of SelectProps.Options.
type SelectOption struct {
	Value    string
	Label    string
	Disabled bool
}

// SelectProps configures a Select.
type SelectProps struct {
	Base
	Name  string
	Color Color
	Size  Size
	// Value marks the matching entry of Options as selected.
	Value string
	// Options are rendered when the select has no children. Use Option
	// children for full control.
	Options  []SelectOption
	Rounded  bool
	Loading  bool
	Multiple bool
	// Rows is the number of visible rows of a Multiple select.
	Rows     int
	Disabled bool
	Required bool
	OnChange Action
}

// Select renders a dropdown select inside Bulma's styled wrapper.
//
// Base applies to the wrapper div. The name, value and events go on the
// inner select element.
func Select(props SelectProps, children ...templ.Component) templ.Component {
	classes := NewClasses("select", props.Color.Class(), props.Size.Class()).
		AddIf(props.Rounded, "is-rounded").
		AddIf(props.Loading, "is-loading").
		AddIf(props.Multiple, "is-multiple")

	var fallback templ.Component
	if len(props.Options) > 0 {
		opts := make([]templ.Component, 0, len(props.Options))
		for _, o := range props.Options {
			label := o.Label
			if label == "" {
				label = o.Value
			}
			opts = append(opts, Option(OptionProps{
				Value:    o.Value,
				Selected: o.Value == props.Value,
				Disabled: o.Disabled,
			}, Text(label)))
		}
		fallback = Group(opts...)
	}

	return shellFallback(children, fallback, func(ctx context.Context, w io.Writer, body templ.Component) error {
		inner := newElement("select").
			set("name", props.Name).
			set("disabled", props.Disabled).
			set("multiple", props.Multiple).
			set("required", props.Required)
		if props.Multiple && props.Rows > 0 {
			inner.set("size", strconv.Itoa(props.Rows))
		}
		inner.on("change", props.OnChange)
		return newElement("div").base(props.Base, classes).render(ctx, w, inner.component(body))
	})
}

// OptionProps configures an Option.
type OptionProps struct {
	Base
	// Value is always rendered, so an empty Value makes a placeholder entry.
	Value    string
	Selected bool
	Disabled bool
}

// Option renders one entry of a Select.
func Option(props OptionProps, children ...templ.Component) templ.Component {
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		return newElement("option").
			base(props.Base, Classes{}).
			setString("value", props.Value).
			set("selected", props.Selected).
			set("disabled", props.Disabled).
			render(ctx, w, body)
	})
}

// CheckboxProps configures a Checkbox.
type CheckboxProps struct {
	Base
	Name string
	// Value is submitted when checked. Defaults to "on".
	Value    string
	Checked  bool
	Disabled bool
	OnChange Action
}

// Checkbox renders a checkbox with its label text.
func Checkbox(props CheckboxProps, children ...templ.Component) templ.Component {
	value := props.Value
	if value == "" {
		value = "on"
	}
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		input := newElement("input").
			set("type", "checkbox").
			set("name", props.Name).
			set("value", value).
			set("checked", props.Checked).
			set("disabled", props.Disabled).
			on("change", props.OnChange)
		return newElement("label").
			base(props.Base, NewClasses("checkbox")).
			set("disabled", props.Disabled).
			render(ctx, w, input.component(), Text(" "), body)
	})
}

// RadioProps configures a Radio. Name and Value are required.
type RadioProps struct {
	Base
	Name     string
	Value    string
	Checked  bool
	Disabled bool
	OnChange Action
}

// Radio renders a radio button with its label text. Radios sharing a Name
// form one group.
//
// Name and Value cannot be enforced at compile time, so a Radio missing
// either is the one component that fails to render: it returns
// ErrMissingProp instead of writing an unnamed input.
func Radio(props RadioProps, children ...templ.Component) templ.Component {
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		if props.Name == "" {
			return missingProp("Radio", "Name")
		}
		if props.Value == "" {
			return missingProp("Radio", "Value")
		}
		input := newElement("input").
			set("type", "radio").
			set("name", props.Name).
			set("value", props.Value).
			set("checked", props.Checked).
			set("disabled", props.Disabled).
			on("change", props.OnChange)
		return newElement("label").
			base(props.Base, NewClasses("radio")).
			set("disabled", props.Disabled).
			render(ctx, w, input.component(), Text(" "), body)
	})
}

// Radios groups radio buttons with consistent spacing.
func Radios(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("radios"), b, children)
}

// Checkboxes groups checkboxes with consistent spacing.
func Checkboxes(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("checkboxes"), b, children)
}

// DefaultFileName is shown by File with HasName before a file is picked.
const DefaultFileName = "No file chosen"

// FileProps configures a File upload.
type FileProps struct {
	Base
	Name      string
	Accept    string
	Multiple  bool
	Disabled  bool
	Color     Color
	Size      Size
	Boxed     bool
	Centered  bool
	Right     bool
	FullWidth bool
	// HasName shows the chosen file name next to the button.
	HasName bool
	// FileName is the displayed name, DefaultFileName when empty.
	FileName string
	OnChange Action
}

// File renders a styled file upload. The children are the call to action,
// "Choose a file…" when empty.
func File(props FileProps, children ...templ.Component) templ.Component {
	classes := NewClasses("file", props.Color.Class(), props.Size.Class()).
		AddIf(props.Boxed, "is-boxed").
		AddIf(props.Centered, "is-centered").
		AddIf(props.Right, "is-right").
		AddIf(props.FullWidth, "is-fullwidth").
		AddIf(props.HasName, "has-name")
	return shellFallback(children, Text("Choose a file…"), func(ctx context.Context, w io.Writer, body templ.Component) error {
		input := newElement("input").
			set("class", "file-input").
			set("type", "file").
			set("name", props.Name).
			set("accept", props.Accept).
			set("multiple", props.Multiple).
			set("disabled", props.Disabled).
			on("change", props.OnChange)
		icon := newElement("span").set("class", "file-icon").component(
			newElement("i").set("class", "fas fa-upload").component(),
		)
		cta := newElement("span").set("class", "file-cta").component(
			icon,
			newElement("span").set("class", "file-label").component(body),
		)
		var name templ.Component
		if props.HasName {
			fileName := props.FileName
			if fileName == "" {
				fileName = DefaultFileName
			}
			name = newElement("span").set("class", "file-name").component(Text(fileName))
		}
		label := newElement("label").set("class", "file-label").component(input.component(), cta, name)
		return newElement("div").base(props.Base, classes).render(ctx, w, label)
	})
}
