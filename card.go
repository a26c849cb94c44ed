package bulma

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Card renders a flexible content container.
//
//	bulma.Card(bulma.Base{},
//	    bulma.CardHeader(bulma.Base{}, bulma.CardHeaderTitle(bulma.CardHeaderTitleProps{}, bulma.Text("Order"))),
//	    bulma.CardContent(bulma.Base{}, bulma.Text("3 items")),
//	    bulma.CardFooter(bulma.Base{}, bulma.CardFooterItem(bulma.CardFooterItemProps{Href: "/orders/1"}, bulma.Text("Open"))),
//	)
func Card(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("card"), b, children)
}

// CardHeader renders the header bar of a Card.
func CardHeader(b Base, children ...templ.Component) templ.Component {
	return container("header", NewClasses("card-header"), b, children)
}

// CardHeaderTitleProps configures a CardHeaderTitle.
type CardHeaderTitleProps struct {
	Base
	Centered bool
}

// CardHeaderTitle renders the title inside a CardHeader.
func CardHeaderTitle(props CardHeaderTitleProps, children ...templ.Component) templ.Component {
	classes := NewClasses("card-header-title").AddIf(props.Centered, "is-centered")
	return container("p", classes, props.Base, children)
}

// CardHeaderIconProps configures a CardHeaderIcon.
type CardHeaderIconProps struct {
	Base
	OnClick Action
	// Label is the accessible name of the button.
	Label string
}

// CardHeaderIcon renders the icon button at the end of a CardHeader.
func CardHeaderIcon(props CardHeaderIconProps, children ...templ.Component) templ.Component {
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		return newElement("button").
			base(props.Base, NewClasses("card-header-icon")).
			set("aria-label", props.Label).
			on("click", props.OnClick).
			render(ctx, w, body)
	})
}

// CardImage holds a full-width Image at the top of a Card.
func CardImage(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("card-image"), b, children)
}

// CardContent renders the padded body of a Card.
func CardContent(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("card-content"), b, children)
}

// CardFooter renders the footer of a Card. Children are CardFooterItems.
func CardFooter(b Base, children ...templ.Component) templ.Component {
	return container("footer", NewClasses("card-footer"), b, children)
}

// CardFooterItemProps configures a CardFooterItem.
type CardFooterItemProps struct {
	Base
	Href    string
	To      Link
	OnClick Action
}

// CardFooterItem renders one footer action, an anchor when it has a
// destination or action and a span otherwise.
func CardFooterItem(props CardFooterItemProps, children ...templ.Component) templ.Component {
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		tag := "span"
		if linked(props.To, props.Href) || !props.OnClick.IsZero() {
			tag = "a"
		}
		return newElement(tag).
			base(props.Base, NewClasses("card-footer-item")).
			navigate(props.To, props.Href).
			on("click", props.OnClick).
			render(ctx, w, body)
	})
}
