// Package bulma provides Bulma CSS components for server-rendered Go web
// applications built with templ and htmx.
//
// Every component is a function from a props struct (and optional children)
// to a templ.Component. The component is pure: it composes Bulma's class
// string from its props and writes one element, occasionally a small fixed
// structure such as a file upload's label and caption. No state is kept
// between renders and nothing is logged.
//
// # Components
//
// Props structs use zero values as defaults, so only the differences from
// Bulma's defaults need spelling out:
//
//	bulma.Button(bulma.ButtonProps{
//	    Color:   bulma.ColorDanger,
//	    Size:    bulma.SizeLarge,
//	    Rounded: true,
//	}, bulma.Text("Delete"))
//
// renders
//
//	<button class="button is-danger is-large is-rounded">Delete</button>
//
// Each props struct embeds Base, the escape hatches shared by every
// component: ID, an extra Class appended after the generated tokens, an
// inline Style and arbitrary Attrs. Sub-components with nothing else to
// configure take a Base directly.
//
// Children can be passed explicitly from Go, as above, or as a templ block:
//
//	@bulma.Notification(bulma.NotificationProps{Color: bulma.ColorInfo}) {
//	    Saved <strong>3</strong> records.
//	}
//
// # Class Composition
//
// BuildClass is the single class composer used by every component: base
// tokens first, then optional tokens, empties dropped, single spaces
// between. Style enumerations (Color, Size, Alignment, ColumnSize and the
// rest) map each variant to its token with a Class method, returning ""
// where Bulma's default needs no modifier:
//
//	bulma.BuildClass([]string{"tag"}, bulma.ColorInfo.Class(), bulma.SizeNormal.Class())
//	// "tag is-info"
//
// # Events
//
// Where a client-side library would take a callback, components take an
// Action: an htmx request, an inline script or prebuilt attributes.
//
//	bulma.Tag(bulma.TagProps{
//	    Delete:   true,
//	    OnDelete: bulma.Request(http.MethodDelete, "/labels/7").Target("closest .tags").Swap(bulma.SwapOuter),
//	})
//
// Components guard their handlers the way Bulma's states imply: a disabled
// or loading Button, a disabled Tab and a disabled pagination link do not
// bind their click actions at all.
//
// # Navigation
//
// Components that can point somewhere accept both Href and To. Href is a
// plain link. To is a Link, fetched by htmx and pushed into history, and
// takes precedence when both are set.
//
// # Testing
//
// TestRender renders a component and parses the result, so tests can
// query by tag and class instead of comparing strings:
//
//	result, _ := bulma.TestRender(bulma.Tag(bulma.TagProps{Rounded: true}, bulma.Text("new")))
//	if !result.First("span.tag").HasClass("is-rounded") { ... }
package bulma
