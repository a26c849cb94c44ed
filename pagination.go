package bulma

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// PaginationProps configures a Pagination.
type PaginationProps struct {
	Base
	Size      Size
	Alignment Alignment
	Rounded   bool
}

// Pagination renders a pagination bar. Children are PaginationPrevious,
// PaginationNext and a PaginationList, in any order.
func Pagination(props PaginationProps, children ...templ.Component) templ.Component {
	classes := NewClasses("pagination", props.Size.Class(), props.Alignment.Class()).
		AddIf(props.Rounded, "is-rounded")
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		return newElement("nav").
			base(props.Base, classes).
			set("role", "navigation").
			set("aria-label", "pagination").
			render(ctx, w, body)
	})
}

// PageStepProps configures PaginationPrevious and PaginationNext.
type PageStepProps struct {
	Base
	Href     string
	To       Link
	Disabled bool
	OnClick  Action
}

// PaginationPrevious renders the previous-page button, "Previous" when it
// has no children. Disabled drops its destination and click action.
func PaginationPrevious(props PageStepProps, children ...templ.Component) templ.Component {
	return pageStep("pagination-previous", "Previous", props, children)
}

// PaginationNext renders the next-page button, "Next page" when it has no
// children. Disabled drops its destination and click action.
func PaginationNext(props PageStepProps, children ...templ.Component) templ.Component {
	return pageStep("pagination-next", "Next page", props, children)
}

func pageStep(class, label string, props PageStepProps, children []templ.Component) templ.Component {
	return shellFallback(children, Text(label), func(ctx context.Context, w io.Writer, body templ.Component) error {
		a := newElement("a").base(props.Base, NewClasses(class))
		if !props.Disabled {
			a.navigate(props.To, props.Href)
		}
		return a.
			set("disabled", props.Disabled).
			onUnless(props.Disabled, "click", props.OnClick).
			render(ctx, w, body)
	})
}

// PaginationList renders the list of page links.
func PaginationList(b Base, children ...templ.Component) templ.Component {
	return container("ul", NewClasses("pagination-list"), b, children)
}

// PaginationLinkProps configures a PaginationLink.
type PaginationLinkProps struct {
	Base
	// Page is the page number. It labels the link when there are no children.
	Page     int
	Current  bool
	Href     string
	To       Link
	Disabled bool
	OnClick  Action
}

// PaginationLink renders one page link inside a PaginationList. Base
// applies to the anchor.
func PaginationLink(props PaginationLinkProps, children ...templ.Component) templ.Component {
	var fallback templ.Component
	if props.Page > 0 {
		fallback = Text(strconv.Itoa(props.Page))
	}
	classes := NewClasses("pagination-link").AddIf(props.Current, "is-current")
	return shellFallback(children, fallback, func(ctx context.Context, w io.Writer, body templ.Component) error {
		a := newElement("a").base(props.Base, classes)
		if props.Page > 0 {
			a.set("aria-label", "Goto page "+strconv.Itoa(props.Page))
		}
		if props.Current {
			a.set("aria-current", "page")
		}
		if !props.Disabled {
			a.navigate(props.To, props.Href)
		}
		a.set("disabled", props.Disabled).onUnless(props.Disabled, "click", props.OnClick)
		return newElement("li").render(ctx, w, a.component(body))
	})
}

// PaginationEllipsis renders the gap marker between page links.
func PaginationEllipsis(b Base) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		span := newElement("span").base(b, NewClasses("pagination-ellipsis"))
		return newElement("li").render(ctx, w, span.component(Text("…")))
	})
}

// PagerProps configures a Pager.
type PagerProps struct {
	PaginationProps
	// Current is the 1-based current page.
	Current int
	// Total is the number of pages.
	Total int
	// Window is how many pages to show on each side of Current. Defaults to 1.
	Window int
	// Link returns the destination of a page. Either Link or OnPage is required.
	Link func(page int) Link
	// OnPage returns the action issued when a page is picked.
	OnPage func(page int) Action
}

// Pager renders a complete Pagination for Total pages: previous and next
// buttons, the first and last page, a window around Current and
// ellipses for the gaps.
func Pager(props PagerProps) templ.Component {
	current := min(max(props.Current, 1), max(props.Total, 1))
	step := func(page int, disabled bool) PageStepProps {
		p := PageStepProps{Disabled: disabled}
		if !disabled {
			p.To, p.OnClick = props.target(page)
		}
		return p
	}

	var items []templ.Component
	for _, page := range PageWindow(current, props.Total, props.Window) {
		if page == 0 {
			items = append(items, PaginationEllipsis(Base{}))
			continue
		}
		to, action := props.target(page)
		items = append(items, PaginationLink(PaginationLinkProps{
			Page:    page,
			Current: page == current,
			To:      to,
			OnClick: action,
		}))
	}

	return Pagination(props.PaginationProps,
		PaginationPrevious(step(current-1, current <= 1)),
		PaginationNext(step(current+1, current >= props.Total)),
		PaginationList(Base{}, items...),
	)
}

func (p PagerProps) target(page int) (Link, Action) {
	var (
		to     Link
		action Action
	)
	if p.Link != nil {
		to = p.Link(page)
	}
	if p.OnPage != nil {
		action = p.OnPage(page)
	}
	return to, action
}

// PageWindow lists the pages a pager shows. Zero marks an ellipsis.
//
//	PageWindow(5, 10, 1) // [1 0 4 5 6 0 10]
//
// A gap of exactly one page shows that page instead of an ellipsis.
func PageWindow(current, total, window int) []int {
	if total <= 0 {
		return nil
	}
	if window <= 0 {
		window = 1
	}
	current = min(max(current, 1), total)

	lo := max(current-window, 1)
	hi := min(current+window, total)

	var pages []int
	if lo > 1 {
		pages = append(pages, 1)
		switch {
		case lo == 3:
			pages = append(pages, 2)
		case lo > 3:
			pages = append(pages, 0)
		}
	}
	for p := lo; p <= hi; p++ {
		pages = append(pages, p)
	}
	if hi < total {
		switch {
		case hi == total-2:
			pages = append(pages, total-1)
		case hi < total-2:
			pages = append(pages, 0)
		}
		pages = append(pages, total)
	}
	return pages
}
