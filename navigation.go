package bulma

// Link is an in-app navigation target.
//
// A component given a Link renders a real anchor (href set, so the page
// works without JavaScript and opens in new tabs) that htmx intercepts:
// the page is fetched with hx-get, swapped into Target and pushed into
// history. When a component has both a Link and an Href, the Link wins.
//
//	bulma.NavbarItem(bulma.NavbarItemProps{
//	    To: bulma.To("/settings").Into("#main"),
//	}, bulma.Text("Settings"))
type Link struct {
	// Path is the URL to navigate to.
	Path string
	// Target is the element receiving the page. Empty means the body; use
	// Into to send the page somewhere else.
	Target string
	// Swap is the swap strategy, innerHTML when empty.
	Swap SwapMode
	// Select picks a fragment out of the fetched page.
	Select string
}

// defaultLinkTarget is used when a Link has no Target.
const defaultLinkTarget = "body"

// To returns a Link to path.
func To(path string) Link {
	return Link{Path: path}
}

// Into sets the element receiving the page.
func (l Link) Into(selector string) Link {
	l.Target = selector
	return l
}

// With sets the swap strategy.
func (l Link) With(mode SwapMode) Link {
	l.Swap = mode
	return l
}

// Pick sets hx-select.
func (l Link) Pick(selector string) Link {
	l.Select = selector
	return l
}

// IsZero reports whether l has no path.
func (l Link) IsZero() bool {
	return l.Path == ""
}

func (l Link) action() Action {
	target := l.Target
	if target == "" {
		target = defaultLinkTarget
	}
	return Get(l.Path).Target(target).Swap(l.Swap).Select(l.Select).PushURL()
}

// linked reports whether a component has somewhere to navigate to.
func linked(to Link, href string) bool {
	return !to.IsZero() || href != ""
}
