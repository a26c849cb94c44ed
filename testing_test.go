package bulma

import (
	"context"
	"testing"

	"github.com/a-h/templ"
)

func TestTestRender(t *testing.T) {
	result, err := TestRender(Box(Base{ID: "b"},
		Tag(TagProps{Color: ColorInfo, Rounded: true}, Text("one")),
		Text(" and "),
		Tag(TagProps{}, Text("two")),
	))
	if err != nil {
		t.Fatal(err)
	}

	if !result.HTMLContains(`<div id="b" class="box">`) {
		t.Errorf("HTML = %q", result.HTML)
	}
	if !result.HTMLContainsAll("one", "two") || result.HTMLContainsAny("three", "four") {
		t.Error("substring helpers disagree with the output")
	}

	root := result.Root()
	if root.Tag != "div" || root.Attrs["id"] != "b" {
		t.Fatalf("Root() = <%s %v>", root.Tag, root.Attrs)
	}
	if got := root.Text(); got != "one and two" {
		t.Errorf("Text() = %q", got)
	}
	if n := len(root.Elements()); n != 2 {
		t.Errorf("Elements() = %d, want 2", n)
	}
}

func TestFindSelectors(t *testing.T) {
	result, err := TestRender(Group(
		Tag(TagProps{Color: ColorInfo, Rounded: true}, Text("a")),
		Tag(TagProps{Rounded: true}, Text("b")),
		Button(ButtonProps{}, Text("c")),
	))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		selector string
		count    int
	}{
		{"span", 2},
		{".tag", 2},
		{"span.tag.is-rounded", 2},
		{".is-info", 1},
		{"span.is-info.is-rounded", 1},
		{"button.is-primary", 1},
		{"button.tag", 0},
		{"a", 0},
		{"", 3},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			if got := result.Count(tt.selector); got != tt.count {
				t.Errorf("Count(%q) = %d, want %d", tt.selector, got, tt.count)
			}
		})
	}

	if got := result.First(".tag").Text(); got != "a" {
		t.Errorf("First(.tag).Text() = %q", got)
	}
	if result.First("table") != nil {
		t.Error("First() should be nil without a match")
	}
}

func TestNilNodeAccessors(t *testing.T) {
	var n *TestNode
	if n.HasClass("x") || n.HasAttr("id") || n.Text() != "" || n.Find("div") != nil || n.Elements() != nil {
		t.Error("nil node accessors should report nothing")
	}
	if v, ok := n.Attr("id"); ok || v != "" {
		t.Error("Attr() on nil node")
	}
}

func TestHasClass(t *testing.T) {
	result, err := TestRender(Button(ButtonProps{Color: ColorDanger, Size: SizeLarge}))
	if err != nil {
		t.Fatal(err)
	}
	btn := result.First("button")
	if !btn.HasClass("button", "is-danger", "is-large") {
		t.Errorf("classes = %v", btn.Classes())
	}
	if btn.HasClass("button", "is-small") {
		t.Error("HasClass() should require every class")
	}
}

func TestTestRenderWithContext(t *testing.T) {
	ctx := templ.WithChildren(context.Background(), Text("from block"))
	result, err := TestRenderWithContext(ctx, Box(Base{}))
	if err != nil {
		t.Fatal(err)
	}
	if got := result.First(".box").Text(); got != "from block" {
		t.Errorf("Text() = %q, want block children", got)
	}
}

func TestTestRenderError(t *testing.T) {
	if _, err := TestRender(Radio(RadioProps{})); !IsMissingProp(err) {
		t.Errorf("TestRender() error = %v, want missing prop", err)
	}
}
