package bulma

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// TagProps configures a Tag.
type TagProps struct {
	Base
	Color   Color
	Size    Size
	Light   bool
	Rounded bool
	// Delete turns the tag into a standalone delete button bound to
	// OnDelete. A delete tag has no content.
	Delete   bool
	OnDelete Action
}

// Tag renders a small label.
func Tag(props TagProps, children ...templ.Component) templ.Component {
	classes := NewClasses("tag").
		Add(props.Color.Class(), props.Size.Class()).
		AddIf(props.Light, "is-light").
		AddIf(props.Rounded, "is-rounded").
		AddIf(props.Delete, "is-delete")
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		if props.Delete {
			return newElement("button").
				base(props.Base, classes).
				set("aria-label", "delete").
				on("click", props.OnDelete).
				render(ctx, w)
		}
		return newElement("span").base(props.Base, classes).render(ctx, w, body)
	})
}

// TagsProps configures a Tags list.
type TagsProps struct {
	Base
	// Addons attaches the tags, as used for a label with a delete button.
	Addons bool
}

// Tags groups tags.
func Tags(props TagsProps, children ...templ.Component) templ.Component {
	return container("div", NewClasses("tags").AddIf(props.Addons, "has-addons"), props.Base, children)
}
