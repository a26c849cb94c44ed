package bulma

import "github.com/a-h/templ"

// TitleProps configures a Title.
type TitleProps struct {
	Base
	// Size picks the heading element and its size class. Defaults to H3.
	Size TitleSize
	// Spaced keeps the normal gap when a Subtitle follows.
	Spaced bool
}

// Title renders a heading, <h3 class="title is-3"> by default.
func Title(props TitleProps, children ...templ.Component) templ.Component {
	size := props.Size.or(H3)
	classes := NewClasses("title", size.Class()).AddIf(props.Spaced, "is-spaced")
	return container(size.Tag(), classes, props.Base, children)
}

// SubtitleProps configures a Subtitle.
type SubtitleProps struct {
	Base
	// Size picks the heading element and its size class. Defaults to H5.
	Size TitleSize
}

// Subtitle renders a secondary heading, <h5 class="subtitle is-5"> by default.
func Subtitle(props SubtitleProps, children ...templ.Component) templ.Component {
	size := props.Size.or(H5)
	return container(size.Tag(), NewClasses("subtitle", size.Class()), props.Base, children)
}

// Heading renders Bulma's small uppercase label, used above values in a Level.
func Heading(b Base, children ...templ.Component) templ.Component {
	return container("p", NewClasses("heading"), b, children)
}
