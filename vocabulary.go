package bulma

import (
	"slices"
	"strings"
)

// elementTokens are the literal class tokens written by component shells.
var elementTokens = []string{
	"block", "box", "breadcrumb", "button", "buttons",
	"card", "card-content", "card-footer", "card-footer-item", "card-header",
	"card-header-icon", "card-header-title", "card-image",
	"checkbox", "checkboxes", "column", "columns", "container", "content", "control",
	"delete", "dropdown", "dropdown-content", "dropdown-divider", "dropdown-item",
	"dropdown-menu", "dropdown-trigger",
	"field", "field-body", "field-label",
	"file", "file-cta", "file-icon", "file-input", "file-label", "file-name",
	"heading", "help", "hero", "hero-body", "hero-foot", "hero-head",
	"icon", "image", "input", "label",
	"level", "level-item", "level-left", "level-right",
	"media", "media-content", "media-left", "media-right",
	"menu", "menu-label", "menu-list",
	"message", "message-body", "message-header",
	"modal", "modal-background", "modal-card", "modal-card-body", "modal-card-foot",
	"modal-card-head", "modal-card-title", "modal-close", "modal-content",
	"navbar", "navbar-brand", "navbar-burger", "navbar-divider", "navbar-dropdown",
	"navbar-end", "navbar-item", "navbar-link", "navbar-menu", "navbar-start",
	"notification",
	"pagination", "pagination-ellipsis", "pagination-link", "pagination-list",
	"pagination-next", "pagination-previous",
	"panel", "panel-block", "panel-heading", "panel-icon", "panel-tabs",
	"progress", "radio", "radios", "section", "select", "subtitle",
	"table", "table-container", "tabs", "tag", "tags", "textarea", "tile", "title",
}

// modifierTokens are the literal boolean modifiers written by component shells.
var modifierTokens = []string{
	"has-addons", "has-dropdown", "has-fixed-size", "has-icons-left", "has-icons-right",
	"has-name",
	"is-active", "is-ancestor", "is-arrowless", "is-bold", "is-bordered", "is-boxed",
	"is-centered", "is-child", "is-current", "is-delete", "is-desktop", "is-expanded",
	"is-fixed-bottom", "is-fixed-top", "is-fluid", "is-focused", "is-fullheight",
	"is-fullwidth", "is-gapless", "is-grouped", "is-horizontal", "is-hoverable",
	"is-inverted", "is-large", "is-light", "is-loading", "is-mobile", "is-multiline",
	"is-multiple", "is-narrow", "is-outlined", "is-parent", "is-right", "is-rounded",
	"is-spaced", "is-striped", "is-transparent", "is-up", "is-vcentered", "is-vertical",
}

// Vocabulary returns every Bulma class token the components can emit,
// sorted and without duplicates. Caller-supplied Base.Class tokens and icon
// font classes are not included.
//
// Comparing the vocabulary with the class selectors of a stylesheet finds
// tokens the stylesheet does not style, which otherwise only show up as
// silently unstyled markup.
func Vocabulary() []string {
	tokens := slices.Clone(elementTokens)
	tokens = append(tokens, modifierTokens...)

	for _, c := range colors {
		tokens = append(tokens, c.Class(), c.TextClass())
	}
	for _, s := range sizes {
		tokens = append(tokens, s.Class(), buttonsSizeClass(s))
	}
	for _, a := range alignments {
		tokens = append(tokens, a.Class())
	}
	for _, t := range themes {
		tokens = append(tokens, t.Class())
	}
	for _, s := range tabsStyles {
		tokens = append(tokens, strings.Fields(s.Class())...)
	}
	for _, s := range separators {
		tokens = append(tokens, s.Class())
	}
	for _, b := range breakpoints {
		tokens = append(tokens, b.Class())
	}
	for _, s := range columnSizes {
		tokens = append(tokens, s.Class(), s.OffsetClass())
	}
	for _, s := range imageSizes {
		tokens = append(tokens, s.Class())
	}
	for s := H1; s <= H6; s++ {
		tokens = append(tokens, s.Class())
	}
	for s := TileSize(1); s <= 12; s++ {
		tokens = append(tokens, s.Class())
	}

	tokens = slices.DeleteFunc(tokens, func(t string) bool { return t == "" })
	slices.Sort(tokens)
	return slices.Compact(tokens)
}
