package bulma

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Default dismiss scripts used when a closable component has no OnClose.
// They act purely in the browser, so static pages work without a server.
const (
	dismissParent  = "this.parentElement.remove()"
	dismissMessage = "this.closest('.message').remove()"
)

// NotificationProps configures a Notification.
type NotificationProps struct {
	Base
	// Color defaults to ColorPrimary. Use ColorNone for the plain grey style.
	Color Color
	Light bool
	// Dismissible adds a delete button before the content.
	Dismissible bool
	// OnClose is bound to the delete button. When empty the button removes
	// the notification in the browser.
	OnClose Action
}

// Notification renders a colored alert block.
func Notification(props NotificationProps, children ...templ.Component) templ.Component {
	classes := NewClasses("notification", props.Color.or(ColorPrimary).Class()).
		AddIf(props.Light, "is-light")
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		var closeBtn templ.Component
		if props.Dismissible {
			closeBtn = Delete(DeleteProps{OnClick: orScript(props.OnClose, dismissParent)})
		}
		return newElement("div").base(props.Base, classes).render(ctx, w, closeBtn, body)
	})
}

func orScript(a Action, js string) Action {
	if a.IsZero() {
		return Script(js)
	}
	return a
}

// MessageProps configures a Message.
type MessageProps struct {
	Base
	Color Color
	Size  Size
}

// Message renders a colored message block. Compose it with MessageHeader and MessageBody.
func Message(props MessageProps, children ...templ.Component) templ.Component {
	classes := NewClasses("message", props.Color.Class(), props.Size.Class())
	return container("article", classes, props.Base, children)
}

// MessageHeaderProps configures a MessageHeader.
type MessageHeaderProps struct {
	Base
	// Closable adds a delete button after the title.
	Closable bool
	// OnClose is bound to the delete button. When empty the button removes
	// the enclosing message in the browser.
	OnClose Action
}

// MessageHeader renders the title bar of a Message. The children are
// wrapped in a paragraph.
func MessageHeader(props MessageHeaderProps, children ...templ.Component) templ.Component {
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		var closeBtn templ.Component
		if props.Closable {
			closeBtn = Delete(DeleteProps{OnClick: orScript(props.OnClose, dismissMessage)})
		}
		return newElement("div").
			base(props.Base, NewClasses("message-header")).
			render(ctx, w, newElement("p").component(body), closeBtn)
	})
}

// MessageBody renders the body of a Message.
func MessageBody(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("message-body"), b, children)
}

// ProgressProps configures a Progress bar.
type ProgressProps struct {
	Base
	// Value is the current value. Nil renders an indeterminate bar.
	Value *float64
	// Max defaults to 100.
	Max   float64
	Color Color
	Size  Size
}

// Progress renders a progress bar. Without children the fallback text is
// the value followed by a percent sign.
func Progress(props ProgressProps, children ...templ.Component) templ.Component {
	limit := props.Max
	if limit <= 0 {
		limit = 100
	}
	classes := NewClasses("progress", props.Color.Class(), props.Size.Class())
	var fallback templ.Component
	if props.Value != nil {
		fallback = Text(formatNumber(*props.Value) + "%")
	}
	return shellFallback(children, fallback, func(ctx context.Context, w io.Writer, body templ.Component) error {
		el := newElement("progress").base(props.Base, classes)
		if props.Value != nil {
			el.set("value", formatNumber(*props.Value))
		}
		return el.set("max", formatNumber(limit)).render(ctx, w, body)
	})
}

// Value returns a pointer to v, for optional numeric props such as ProgressProps.Value.
func Value(v float64) *float64 {
	return &v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// IconProps configures an Icon.
type IconProps struct {
	Base
	Size  Size
	Color Color
	// Name is the icon font class list, e.g. "fas fa-home". Used when the
	// icon has no children.
	Name string
}

// Icon renders a fixed-size container for an icon font glyph.
func Icon(props IconProps, children ...templ.Component) templ.Component {
	classes := NewClasses("icon", props.Size.Class(), props.Color.TextClass())
	var fallback templ.Component
	if props.Name != "" {
		fallback = newElement("i").set("class", props.Name).component()
	}
	return shellFallback(children, fallback, func(ctx context.Context, w io.Writer, body templ.Component) error {
		return newElement("span").base(props.Base, classes).render(ctx, w, body)
	})
}

// ImageProps configures an Image.
type ImageProps struct {
	Base
	Size    ImageSize
	Rounded bool
	// Src renders an img inside the figure when there are no children.
	Src string
	Alt string
}

// Image renders a figure that constrains its image to a size or ratio.
//
// With Src set and no children an img is generated. Rounded marks both the
// figure and the generated img.
func Image(props ImageProps, children ...templ.Component) templ.Component {
	var fallback templ.Component
	if props.Src != "" {
		fallback = newElement("img").
			set("class", If(props.Rounded, "is-rounded")).
			set("src", string(templ.URL(props.Src))).
			setString("alt", props.Alt).
			component()
	}
	return shellFallback(children, fallback, func(ctx context.Context, w io.Writer, body templ.Component) error {
		classes := NewClasses("image", props.Size.Class()).AddIf(props.Rounded, "is-rounded")
		return newElement("figure").base(props.Base, classes).render(ctx, w, body)
	})
}

// TableProps configures a Table.
type TableProps struct {
	Base
	Bordered  bool
	Striped   bool
	Narrow    bool
	Hoverable bool
	FullWidth bool
	Size      Size
}

// Table renders a styled table. Children are the thead, tbody and tfoot markup.
func Table(props TableProps, children ...templ.Component) templ.Component {
	classes := NewClasses("table").
		AddIf(props.Bordered, "is-bordered").
		AddIf(props.Striped, "is-striped").
		AddIf(props.Narrow, "is-narrow").
		AddIf(props.Hoverable, "is-hoverable").
		AddIf(props.FullWidth, "is-fullwidth").
		Add(props.Size.Class())
	return container("table", classes, props.Base, children)
}

// TableContainer makes a wide table scroll horizontally.
func TableContainer(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("table-container"), b, children)
}
