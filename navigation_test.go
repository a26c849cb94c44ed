package bulma

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/a-h/templ"
)

func TestTabs(t *testing.T) {
	got := render(t, Tabs(TabsProps{Size: SizeSmall, Style: TabsToggleRounded, Alignment: AlignCentered, FullWidth: true},
		Tab(TabProps{Active: true, Href: "/a"}, Text("A")),
	))
	expect := `<div class="tabs is-small is-toggle is-toggle-rounded is-centered is-fullwidth"><ul>` +
		`<li class="is-active"><a href="/a">A</a></li></ul></div>`
	if got != expect {
		t.Errorf("Tabs() = %q, want %q", got, expect)
	}
}

func TestTab(t *testing.T) {
	tests := []struct {
		name   string
		props  TabProps
		expect string
	}{
		{"href", TabProps{Href: "/a"}, `<li><a href="/a">A</a></li>`},
		{"href with click", TabProps{Href: "/a", OnClick: Script("t()")}, `<li><a href="/a" onclick="t()">A</a></li>`},
		{"disabled href becomes text", TabProps{Href: "/a", Disabled: true, OnClick: Script("t()")}, `<li><span>A</span></li>`},
		{"action only", TabProps{OnClick: Post("/tab/1")}, `<li><a hx-post="/tab/1" hx-trigger="click">A</a></li>`},
		{"disabled action swallowed", TabProps{OnClick: Post("/tab/1"), Disabled: true}, `<li><a>A</a></li>`},
		{
			"link",
			TabProps{To: To("/b").Into("#panel")},
			`<li><a href="/b" hx-get="/b" hx-target="#panel" hx-push-url="true" hx-trigger="click">A</a></li>`,
		},
		{"active", TabProps{Active: true}, `<li class="is-active"><a>A</a></li>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, Tab(tt.props, Text("A"))); got != tt.expect {
				t.Errorf("Tab() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestBreadcrumb(t *testing.T) {
	got := render(t, Breadcrumb(BreadcrumbProps{Separator: SeparatorArrow, Alignment: AlignRight, Size: SizeLarge},
		BreadcrumbItem(BreadcrumbItemProps{Href: "/"}, Text("Home")),
		BreadcrumbItem(BreadcrumbItemProps{Active: true}, Text("Docs")),
	))
	expect := `<nav class="breadcrumb is-large is-right has-arrow-separator" aria-label="breadcrumbs"><ul>` +
		`<li><a href="/">Home</a></li>` +
		`<li class="is-active"><span aria-current="page">Docs</span></li>` +
		`</ul></nav>`
	if got != expect {
		t.Errorf("Breadcrumb() = %q, want %q", got, expect)
	}
}

func TestPagination(t *testing.T) {
	got := render(t, Pagination(PaginationProps{Rounded: true, Alignment: AlignCentered, Size: SizeSmall},
		PaginationPrevious(PageStepProps{Href: "/p/1", Disabled: true}),
		PaginationNext(PageStepProps{Href: "/p/3"}),
		PaginationList(Base{},
			PaginationLink(PaginationLinkProps{Page: 2, Current: true, Href: "/p/2"}),
			PaginationEllipsis(Base{}),
		),
	))
	expect := `<nav class="pagination is-small is-centered is-rounded" role="navigation" aria-label="pagination">` +
		`<a class="pagination-previous" disabled>Previous</a>` +
		`<a class="pagination-next" href="/p/3">Next page</a>` +
		`<ul class="pagination-list">` +
		`<li><a class="pagination-link is-current" aria-label="Goto page 2" aria-current="page" href="/p/2">2</a></li>` +
		`<li><span class="pagination-ellipsis">…</span></li>` +
		`</ul></nav>`
	if got != expect {
		t.Errorf("Pagination() = %q, want %q", got, expect)
	}
}

func TestPaginationLinkDisabled(t *testing.T) {
	got := render(t, PaginationLink(PaginationLinkProps{Page: 4, Href: "/p/4", Disabled: true, OnClick: Post("/p")}))
	expect := `<li><a class="pagination-link" aria-label="Goto page 4" disabled>4</a></li>`
	if got != expect {
		t.Errorf("PaginationLink() = %q, want %q", got, expect)
	}
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		current, total, window int
		expect                 []int
	}{
		{5, 10, 1, []int{1, 0, 4, 5, 6, 0, 10}},
		{1, 10, 1, []int{1, 2, 0, 10}},
		{10, 10, 1, []int{1, 0, 9, 10}},
		{3, 10, 1, []int{1, 2, 3, 4, 0, 10}},
		{4, 10, 1, []int{1, 2, 3, 4, 5, 0, 10}},
		{8, 10, 1, []int{1, 0, 7, 8, 9, 10}},
		{2, 3, 1, []int{1, 2, 3}},
		{1, 1, 1, []int{1}},
		{5, 10, 2, []int{1, 2, 3, 4, 5, 6, 7, 0, 10}},
		{6, 10, 2, []int{1, 0, 4, 5, 6, 7, 8, 9, 10}},
		{99, 5, 1, []int{1, 0, 4, 5}},
		{1, 0, 1, nil},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d of %d", tt.current, tt.total), func(t *testing.T) {
			got := PageWindow(tt.current, tt.total, tt.window)
			if !reflect.DeepEqual(got, tt.expect) {
				t.Errorf("PageWindow() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestPager(t *testing.T) {
	result, err := TestRender(Pager(PagerProps{
		Current: 1,
		Total:   5,
		OnPage: func(page int) Action {
			return Post("/list").Vals(map[string]any{"page": page}).Target("#list")
		},
	}))
	if err != nil {
		t.Fatal(err)
	}

	prev := result.First("a.pagination-previous")
	if !prev.HasAttr("disabled") || prev.HasAttr("hx-post") {
		t.Error("previous should be disabled on the first page")
	}
	next := result.First("a.pagination-next")
	if v, _ := next.Attr("hx-vals"); v != `{"page":2}` {
		t.Errorf("next hx-vals = %q", v)
	}
	links := result.Find("a.pagination-link")
	if len(links) != 3 {
		t.Fatalf("found %d page links, want 3", len(links))
	}
	if !links[0].HasClass("is-current") || links[0].Text() != "1" {
		t.Errorf("first link = %q %q", links[0].Class(), links[0].Text())
	}
	if links[2].Text() != "5" {
		t.Errorf("last link = %q, want 5", links[2].Text())
	}
	if result.Count(".pagination-ellipsis") != 1 {
		t.Errorf("ellipses = %d, want 1", result.Count(".pagination-ellipsis"))
	}
}

func TestPagerWithLinks(t *testing.T) {
	result, err := TestRender(Pager(PagerProps{
		Current: 3,
		Total:   3,
		Link:    func(page int) Link { return To(fmt.Sprintf("/items?page=%d", page)) },
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !result.First("a.pagination-next").HasAttr("disabled") {
		t.Error("next should be disabled on the last page")
	}
	if v, _ := result.First("a.pagination-previous").Attr("href"); v != "/items?page=2" {
		t.Errorf("previous href = %q", v)
	}
}

func TestNavbar(t *testing.T) {
	result, err := TestRender(Navbar(NavbarProps{Color: ColorDark, FixedTop: true, Spaced: true},
		NavbarBrand(Base{},
			NavbarItem(NavbarItemProps{To: To("/")}, Text("Home")),
			NavbarBurger(NavbarBurgerProps{Target: "menu"}),
		),
		NavbarMenu(NavbarMenuProps{Base: Base{ID: "menu"}},
			NavbarStart(Base{},
				NavbarItem(NavbarItemProps{Href: "/docs", Active: true}, Text("Docs")),
				NavbarItem(NavbarItemProps{HasDropdown: true, Hoverable: true},
					NavbarLink(NavbarLinkProps{}, Text("More")),
					NavbarDropdown(NavbarDropdownProps{Right: true},
						NavbarItem(NavbarItemProps{Href: "/about"}, Text("About")),
						NavbarDivider(Base{}),
					),
				),
			),
			NavbarEnd(Base{}, NavbarItem(NavbarItemProps{}, Text("v1"))),
		),
	))
	if err != nil {
		t.Fatal(err)
	}

	nav := result.Root()
	if nav.Tag != "nav" || nav.Class() != "navbar is-dark is-fixed-top is-spaced" {
		t.Fatalf("nav = <%s class=%q>", nav.Tag, nav.Class())
	}
	if nav.Attrs["role"] != "navigation" || nav.Attrs["aria-label"] != "main navigation" {
		t.Errorf("nav attrs = %v", nav.Attrs)
	}

	burger := result.First("a.navbar-burger")
	if burger.Attrs["data-target"] != "menu" || burger.Attrs["aria-expanded"] != "false" {
		t.Errorf("burger attrs = %v", burger.Attrs)
	}
	if len(burger.Elements()) != 4 {
		t.Errorf("burger has %d lines, want 4", len(burger.Elements()))
	}
	if !burger.HasAttr("onclick") {
		t.Error("burger should toggle in the browser by default")
	}

	items := result.Find(".navbar-item")
	if len(items) != 5 {
		t.Fatalf("found %d navbar items, want 5", len(items))
	}
	if items[0].Tag != "a" || items[0].Attrs["hx-get"] != "/" {
		t.Errorf("brand item = <%s %v>", items[0].Tag, items[0].Attrs)
	}
	if items[1].Tag != "a" || !items[1].HasClass("is-active") {
		t.Errorf("docs item = <%s class=%q>", items[1].Tag, items[1].Class())
	}
	if items[2].Tag != "div" || items[2].Class() != "navbar-item has-dropdown is-hoverable" {
		t.Errorf("dropdown item = <%s class=%q>", items[2].Tag, items[2].Class())
	}
	if result.First("div.navbar-dropdown.is-right") == nil || result.First("hr.navbar-divider") == nil {
		t.Error("missing dropdown parts")
	}
	if items[4].Tag != "div" {
		t.Errorf("item without destination should be a div, got %s", items[4].Tag)
	}
}

func TestMenu(t *testing.T) {
	got := render(t, Menu(Base{},
		MenuLabel(Base{}, Text("General")),
		MenuList(Base{},
			MenuItem(MenuItemProps{Href: "/dash", Active: true}, Text("Dashboard")),
			MenuItem(MenuItemProps{
				Href: "/team",
				Sub:  MenuList(Base{}, MenuItem(MenuItemProps{Href: "/team/a"}, Text("A"))),
			}, Text("Team")),
		),
	))
	expect := `<aside class="menu"><p class="menu-label">General</p><ul class="menu-list">` +
		`<li><a class="is-active" href="/dash" aria-current="page">Dashboard</a></li>` +
		`<li><a href="/team">Team</a><ul class="menu-list"><li><a href="/team/a">A</a></li></ul></li>` +
		`</ul></aside>`
	if got != expect {
		t.Errorf("Menu() = %q, want %q", got, expect)
	}
}

func TestPanel(t *testing.T) {
	tests := []struct {
		name   string
		c      templ.Component
		expect string
	}{
		{"panel", Panel(PanelProps{Color: ColorPrimary}), `<nav class="panel is-primary"></nav>`},
		{"heading", PanelHeading(Base{}, Text("Repos")), `<p class="panel-heading">Repos</p>`},
		{"tabs", PanelTabs(Base{}), `<p class="panel-tabs"></p>`},
		{"block div", PanelBlock(PanelBlockProps{}, Text("x")), `<div class="panel-block">x</div>`},
		{"block link", PanelBlock(PanelBlockProps{Href: "/r", Active: true}, Text("x")), `<a class="panel-block is-active" href="/r">x</a>`},
		{"icon", PanelIcon(PanelIconProps{Name: "fas fa-book"}), `<span class="panel-icon"><i class="fas fa-book" aria-hidden="true"></i></span>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.c); got != tt.expect {
				t.Errorf("render = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestLinkTargetFallback(t *testing.T) {
	tests := []struct {
		name   string
		link   Link
		expect string
	}{
		{"empty target is body", To("/a"), `hx-target="body"`},
		{"into overrides", To("/a").Into("#x"), `hx-target="#x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, Button(ButtonProps{To: tt.link}, Text("A")))
			if !strings.Contains(got, tt.expect) {
				t.Errorf("Button() = %q, want %s", got, tt.expect)
			}
		})
	}
}

func TestLinkRenderIsStable(t *testing.T) {
	c := Button(ButtonProps{To: To("/a")}, Text("A"))
	want := render(t, c)

	const workers = 8
	got := make([]string, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var b strings.Builder
			if err := c.Render(t.Context(), &b); err != nil {
				t.Error(err)
			}
			got[i] = b.String()
		}()
	}
	wg.Wait()

	for i, g := range got {
		if g != want {
			t.Errorf("render %d = %q, want %q", i, g, want)
		}
	}
}
