package bulma

import (
	"testing"
)

func TestDropdown(t *testing.T) {
	result, err := TestRender(Dropdown(DropdownProps{Active: true, Right: true, Up: true},
		DropdownTrigger(DropdownTriggerProps{},
			Button(ButtonProps{}, Text("Options")),
		),
		DropdownMenu(Base{ID: "menu"},
			DropdownItem(DropdownItemProps{Href: "/one", Active: true}, Text("One")),
			DropdownDivider(Base{}),
			DropdownItem(DropdownItemProps{}, Text("Two")),
		),
	))
	if err != nil {
		t.Fatal(err)
	}

	if got := result.Root().Class(); got != "dropdown is-active is-right is-up" {
		t.Errorf("dropdown class = %q", got)
	}
	trigger := result.First("div.dropdown-trigger")
	if js, _ := trigger.Attr("onclick"); js != toggleDropdown {
		t.Errorf("trigger onclick = %q, want default toggle", js)
	}
	menu := result.First("div.dropdown-menu")
	if menu.Attrs["id"] != "menu" || menu.Attrs["role"] != "menu" {
		t.Errorf("menu attrs = %v", menu.Attrs)
	}
	if menu.First("div.dropdown-content") == nil {
		t.Fatal("menu items should be wrapped in dropdown-content")
	}
	items := result.Find(".dropdown-item")
	if len(items) != 2 {
		t.Fatalf("found %d items, want 2", len(items))
	}
	if items[0].Tag != "a" || items[0].Class() != "dropdown-item is-active" {
		t.Errorf("first item = <%s class=%q>", items[0].Tag, items[0].Class())
	}
	if items[1].Tag != "div" {
		t.Errorf("item without destination should be a div, got %s", items[1].Tag)
	}
	if result.Count("hr.dropdown-divider") != 1 {
		t.Error("missing divider")
	}
}

func TestDropdownTriggerAction(t *testing.T) {
	got := render(t, DropdownTrigger(DropdownTriggerProps{OnClick: Get("/menu").Target("#menu")}))
	expect := `<div class="dropdown-trigger" hx-get="/menu" hx-target="#menu" hx-trigger="click"></div>`
	if got != expect {
		t.Errorf("DropdownTrigger() = %q, want %q", got, expect)
	}
}

func TestModal(t *testing.T) {
	result, err := TestRender(Modal(ModalProps{Active: true, Closable: true},
		ModalContent(Base{}, Box(Base{}, Text("Hello"))),
	))
	if err != nil {
		t.Fatal(err)
	}

	modal := result.Root()
	if modal.Class() != "modal is-active" {
		t.Errorf("modal class = %q", modal.Class())
	}
	children := modal.Elements()
	if len(children) != 3 {
		t.Fatalf("modal has %d children, want 3", len(children))
	}
	if !children[0].HasClass("modal-background") || !children[1].HasClass("modal-content") {
		t.Errorf("unexpected order: %q, %q", children[0].Class(), children[1].Class())
	}
	closeBtn := children[2]
	if closeBtn.Tag != "button" || closeBtn.Class() != "modal-close is-large" || closeBtn.Attrs["aria-label"] != "close" {
		t.Errorf("close button = <%s %v>", closeBtn.Tag, closeBtn.Attrs)
	}
	for _, n := range []*TestNode{children[0], closeBtn} {
		if js, _ := n.Attr("onclick"); js != closeModal {
			t.Errorf("%s onclick = %q, want default close", n.Class(), js)
		}
	}
	if got := result.First(".box").Text(); got != "Hello" {
		t.Errorf("content = %q", got)
	}
}

func TestModalServerClose(t *testing.T) {
	result, err := TestRender(Modal(ModalProps{
		Active:  true,
		OnClose: Post("/modal/close").Target("closest .modal").Swap(SwapDelete),
	}))
	if err != nil {
		t.Fatal(err)
	}
	if result.Count("button.modal-close") != 0 {
		t.Error("close button rendered without Closable")
	}
	bg := result.First(".modal-background")
	if bg.Attrs["hx-post"] != "/modal/close" || bg.Attrs["hx-swap"] != "delete" || bg.HasAttr("onclick") {
		t.Errorf("background attrs = %v", bg.Attrs)
	}
}

func TestModalCard(t *testing.T) {
	result, err := TestRender(Modal(ModalProps{Active: true},
		ModalCard(Base{},
			ModalCardHead(ModalCardHeadProps{}, ModalCardTitle(Base{}, Text("Edit"))),
			ModalCardBody(Base{}, Text("body")),
			ModalCardFoot(Base{}, Button(ButtonProps{Color: ColorSuccess}, Text("Save"))),
		),
	))
	if err != nil {
		t.Fatal(err)
	}

	head := result.First("header.modal-card-head")
	if head == nil {
		t.Fatal("missing head")
	}
	parts := head.Elements()
	if len(parts) != 2 || !parts[0].HasClass("modal-card-title") || !parts[1].HasClass("delete") {
		t.Fatalf("head children = %d", len(parts))
	}
	if parts[1].Attrs["aria-label"] != "close" {
		t.Errorf("delete label = %q", parts[1].Attrs["aria-label"])
	}
	if js, _ := parts[1].Attr("onclick"); js != closeModal {
		t.Errorf("delete onclick = %q", js)
	}
	if result.First("section.modal-card-body") == nil || result.First("footer.modal-card-foot") == nil {
		t.Error("missing body or foot")
	}
}

func TestCard(t *testing.T) {
	got := render(t, Card(Base{},
		CardHeader(Base{},
			CardHeaderTitle(CardHeaderTitleProps{Centered: true}, Text("Order")),
			CardHeaderIcon(CardHeaderIconProps{Label: "more", OnClick: Get("/more")}),
		),
		CardImage(Base{}),
		CardContent(Base{}, Text("3 items")),
		CardFooter(Base{},
			CardFooterItem(CardFooterItemProps{Href: "/orders/1"}, Text("Open")),
			CardFooterItem(CardFooterItemProps{OnClick: Post("/orders/1/archive")}, Text("Archive")),
			CardFooterItem(CardFooterItemProps{}, Text("Total")),
		),
	))
	expect := `<div class="card">` +
		`<header class="card-header">` +
		`<p class="card-header-title is-centered">Order</p>` +
		`<button class="card-header-icon" aria-label="more" hx-get="/more" hx-trigger="click"></button>` +
		`</header>` +
		`<div class="card-image"></div>` +
		`<div class="card-content">3 items</div>` +
		`<footer class="card-footer">` +
		`<a class="card-footer-item" href="/orders/1">Open</a>` +
		`<a class="card-footer-item" hx-post="/orders/1/archive" hx-trigger="click">Archive</a>` +
		`<span class="card-footer-item">Total</span>` +
		`</footer></div>`
	if got != expect {
		t.Errorf("Card() = %q, want %q", got, expect)
	}
}
