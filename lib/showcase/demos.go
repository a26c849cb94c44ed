package showcase

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/pthm/bulma"
)

// formInt reads an integer form value posted alongside the state.
func formInt(r *http.Request, key string) (int, error) {
	n, err := strconv.Atoi(r.PostForm.Get(key))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrBadState, key, err)
	}
	return n, nil
}

// CounterState is the state of the counter demo.
type CounterState struct {
	Count int `msgpack:"n"`
}

func counterDemo(accent func() bulma.Color) *Demo[CounterState] {
	d := NewDemo("counter", "Counter", CounterState{}, func(f *Frame[CounterState]) templ.Component {
		color := bulma.ColorNone
		switch {
		case f.State.Count > 0:
			color = bulma.ColorSuccess
		case f.State.Count < 0:
			color = bulma.ColorDanger
		}
		return bulma.Level(bulma.LevelProps{Mobile: true},
			bulma.LevelLeft(bulma.Base{},
				bulma.LevelItem(bulma.Base{},
					bulma.Buttons(bulma.ButtonsProps{Addons: true},
						bulma.Button(bulma.ButtonProps{Color: accent(), OnClick: f.Do("dec")}, bulma.Text("−")),
						bulma.Button(bulma.ButtonProps{Color: accent(), OnClick: f.Do("inc")}, bulma.Text("+")),
					),
				),
				bulma.LevelItem(bulma.Base{},
					bulma.Tag(bulma.TagProps{Color: color, Size: bulma.SizeLarge}, bulma.Text(strconv.Itoa(f.State.Count))),
				),
			),
			bulma.LevelRight(bulma.Base{},
				bulma.LevelItem(bulma.Base{},
					bulma.Button(bulma.ButtonProps{
						Color:    bulma.ColorDanger,
						Outlined: true,
						Disabled: f.State.Count == 0,
						OnClick:  f.Do("reset").Confirm("Reset the counter?"),
					}, bulma.Text("Reset")),
				),
			),
		)
	})
	d.On("inc", func(_ context.Context, s CounterState, _ *http.Request) Result[CounterState] {
		s.Count++
		return OK(s)
	})
	d.On("dec", func(_ context.Context, s CounterState, _ *http.Request) Result[CounterState] {
		s.Count--
		return OK(s)
	})
	d.On("reset", func(_ context.Context, s CounterState, _ *http.Request) Result[CounterState] {
		return OK(CounterState{}).Flash(bulma.ColorInfo, fmt.Sprintf("Counter reset from %d", s.Count))
	})
	return d
}

// NotificationState is the state of the notification demo.
type NotificationState struct {
	Dismissed bool `msgpack:"d"`
	Color     int  `msgpack:"c"`
}

func notificationDemo() *Demo[NotificationState] {
	colors := []bulma.Color{bulma.ColorInfo, bulma.ColorSuccess, bulma.ColorWarning, bulma.ColorDanger}
	d := NewDemo("notification", "Dismissible notification", NotificationState{}, func(f *Frame[NotificationState]) templ.Component {
		if f.State.Dismissed {
			return bulma.Button(bulma.ButtonProps{Color: bulma.ColorLink, Outlined: true, OnClick: f.Do("restore")}, bulma.Text("Show it again"))
		}
		color := colors[f.State.Color%len(colors)]
		return bulma.Notification(bulma.NotificationProps{Color: color, Dismissible: true, OnClose: f.Do("dismiss")},
			bulma.Text("The delete button asks the server to dismiss this notification. "),
			bulma.Button(bulma.ButtonProps{Size: bulma.SizeSmall, Color: bulma.ColorWhite, OnClick: f.Do("recolor")}, bulma.Text("Next color")),
		)
	})
	d.On("dismiss", func(_ context.Context, s NotificationState, _ *http.Request) Result[NotificationState] {
		s.Dismissed = true
		return OK(s)
	})
	d.On("restore", func(_ context.Context, s NotificationState, _ *http.Request) Result[NotificationState] {
		s.Dismissed = false
		return OK(s)
	})
	d.On("recolor", func(_ context.Context, s NotificationState, _ *http.Request) Result[NotificationState] {
		s.Color = (s.Color + 1) % len(colors)
		return OK(s)
	})
	return d
}

// TabsState is the state of the tabs demo.
type TabsState struct {
	Active int `msgpack:"a"`
}

var tabPanes = []struct {
	label, body string
}{
	{"Pictures", "Tabs are plain anchors; this demo swaps the whole box on every click."},
	{"Music", "The active tab is part of the sealed state sent with each request."},
	{"Videos", "Disabled tabs swallow clicks: nothing is bound to them."},
	{"Documents", "Documents are not available in this demo."},
}

func tabsDemo() *Demo[TabsState] {
	d := NewDemo("tabs", "Tabs", TabsState{}, func(f *Frame[TabsState]) templ.Component {
		tabs := make([]templ.Component, len(tabPanes))
		for i, p := range tabPanes {
			tabs[i] = bulma.Tab(bulma.TabProps{
				Active:   i == f.State.Active,
				Disabled: i == len(tabPanes)-1,
				OnClick:  f.DoWith("select", map[string]any{"tab": i}),
			}, bulma.Text(p.label))
		}
		return bulma.Group(
			bulma.Tabs(bulma.TabsProps{Style: bulma.TabsBoxed}, tabs...),
			bulma.Content(bulma.ContentProps{}, bulma.Text(tabPanes[f.State.Active].body)),
		)
	})
	d.On("select", func(_ context.Context, s TabsState, r *http.Request) Result[TabsState] {
		tab, err := formInt(r, "tab")
		if err != nil {
			return Err(s, err)
		}
		if tab < 0 || tab >= len(tabPanes)-1 {
			return Err(s, fmt.Errorf("%w: tab %d", ErrBadState, tab))
		}
		s.Active = tab
		return OK(s)
	})
	return d
}

// PagerState is the state of the pagination demo.
type PagerState struct {
	Page int `msgpack:"p"`
}

const (
	pagerRows     = 47
	pagerPageSize = 5
)

func pagerPages() int {
	return (pagerRows + pagerPageSize - 1) / pagerPageSize
}

func pagerDemo() *Demo[PagerState] {
	d := NewDemo("pager", "Pagination", PagerState{Page: 1}, func(f *Frame[PagerState]) templ.Component {
		first := (f.State.Page-1)*pagerPageSize + 1
		last := min(first+pagerPageSize-1, pagerRows)
		var rows strings.Builder
		rows.WriteString("<thead><tr><th>#</th><th>Item</th></tr></thead><tbody>")
		for i := first; i <= last; i++ {
			fmt.Fprintf(&rows, "<tr><td>%d</td><td>Row %d of %d</td></tr>", i, i, pagerRows)
		}
		rows.WriteString("</tbody>")
		return bulma.Group(
			bulma.Table(bulma.TableProps{Striped: true, FullWidth: true, Narrow: true}, templ.Raw(rows.String())),
			bulma.Pager(bulma.PagerProps{
				PaginationProps: bulma.PaginationProps{Alignment: bulma.AlignCentered, Rounded: true},
				Current:         f.State.Page,
				Total:           pagerPages(),
				OnPage: func(page int) bulma.Action {
					return f.DoWith("page", map[string]any{"page": page})
				},
			}),
		)
	})
	d.On("page", func(_ context.Context, s PagerState, r *http.Request) Result[PagerState] {
		page, err := formInt(r, "page")
		if err != nil {
			return Err(s, err)
		}
		s.Page = min(max(page, 1), pagerPages())
		return OK(s).Trigger("page:changed", map[string]any{"page": s.Page})
	})
	return d
}

// ModalState is the state of the modal demo.
type ModalState struct {
	Open      bool `msgpack:"o"`
	Confirmed int  `msgpack:"c"`
}

func modalDemo(accent func() bulma.Color) *Demo[ModalState] {
	d := NewDemo("modal", "Modal", ModalState{}, func(f *Frame[ModalState]) templ.Component {
		return bulma.Group(
			bulma.Button(bulma.ButtonProps{Color: accent(), OnClick: f.Do("open")}, bulma.Text("Open modal")),
			bulma.Help(bulma.HelpProps{}, bulma.Text(fmt.Sprintf("Confirmed %d times", f.State.Confirmed))),
			bulma.When(f.State.Open, bulma.Modal(bulma.ModalProps{Active: true, OnClose: f.Do("close")},
				bulma.ModalCard(bulma.Base{},
					bulma.ModalCardHead(bulma.ModalCardHeadProps{OnClose: f.Do("close")},
						bulma.ModalCardTitle(bulma.Base{}, bulma.Text("Confirm")),
					),
					bulma.ModalCardBody(bulma.Base{}, bulma.Text("The modal is rendered by the server only while it is open.")),
					bulma.ModalCardFoot(bulma.Base{},
						bulma.Buttons(bulma.ButtonsProps{},
							bulma.Button(bulma.ButtonProps{Color: bulma.ColorSuccess, OnClick: f.Do("confirm")}, bulma.Text("Confirm")),
							bulma.Button(bulma.ButtonProps{Color: bulma.ColorNone, OnClick: f.Do("close")}, bulma.Text("Cancel")),
						),
					),
				),
			)),
		)
	})
	d.On("open", func(_ context.Context, s ModalState, _ *http.Request) Result[ModalState] {
		s.Open = true
		return OK(s)
	})
	d.On("close", func(_ context.Context, s ModalState, _ *http.Request) Result[ModalState] {
		s.Open = false
		return OK(s)
	})
	d.On("confirm", func(_ context.Context, s ModalState, _ *http.Request) Result[ModalState] {
		s.Open = false
		s.Confirmed++
		return OK(s).Flash(bulma.ColorSuccess, "Confirmed")
	})
	return d
}

// DropdownState is the state of the dropdown demo.
type DropdownState struct {
	Open   bool   `msgpack:"o"`
	Choice string `msgpack:"c"`
}

var dropdownChoices = []string{"small", "normal", "medium", "large"}

func dropdownDemo() *Demo[DropdownState] {
	d := NewDemo("dropdown", "Dropdown", DropdownState{}, func(f *Frame[DropdownState]) templ.Component {
		label := "Choose a size"
		if f.State.Choice != "" {
			label = "Size: " + f.State.Choice
		}
		items := make([]templ.Component, 0, len(dropdownChoices)+2)
		for _, c := range dropdownChoices {
			items = append(items, bulma.DropdownItem(bulma.DropdownItemProps{
				Active:  c == f.State.Choice,
				Href:    "#",
				OnClick: f.DoWith("pick", map[string]any{"choice": c}),
			}, bulma.Text(c)))
		}
		items = append(items,
			bulma.DropdownDivider(bulma.Base{}),
			bulma.DropdownItem(bulma.DropdownItemProps{Href: "#", OnClick: f.DoWith("pick", map[string]any{"choice": ""})}, bulma.Text("Clear")),
		)

		size, _ := bulma.ParseSize(f.State.Choice)
		return bulma.Dropdown(bulma.DropdownProps{Active: f.State.Open},
			bulma.DropdownTrigger(bulma.DropdownTriggerProps{OnClick: f.Do("toggle")},
				bulma.Button(bulma.ButtonProps{Color: bulma.ColorNone, Size: size}, bulma.Text(label)),
			),
			bulma.DropdownMenu(bulma.Base{}, items...),
		)
	})
	d.On("toggle", func(_ context.Context, s DropdownState, _ *http.Request) Result[DropdownState] {
		s.Open = !s.Open
		return OK(s)
	})
	d.On("pick", func(_ context.Context, s DropdownState, r *http.Request) Result[DropdownState] {
		choice := r.PostForm.Get("choice")
		if choice != "" && !slices.Contains(dropdownChoices, choice) {
			return Err(s, fmt.Errorf("%w: choice %q", ErrBadState, choice))
		}
		return OK(DropdownState{Choice: choice})
	})
	return d
}

// Demos returns every interactive demo. accent is read on each render so
// configuration reloads apply to the next response.
func Demos(accent func() bulma.Color) []DemoHandler {
	return []DemoHandler{
		counterDemo(accent),
		notificationDemo(),
		tabsDemo(),
		pagerDemo(),
		modalDemo(accent),
		dropdownDemo(),
	}
}
