package showcase

import (
	_ "embed"
	"fmt"

	"github.com/a-h/templ"

	"github.com/pthm/bulma"
	"github.com/pthm/bulma/lib/markdown"
)

//go:embed docs/guide.md
var guide []byte

// Page is one page of the gallery.
type Page struct {
	Slug  string
	Title string
	// Icon is a Font Awesome class list shown in the menu.
	Icon string
	body func(s *Showcase) templ.Component
}

// Path is the URL of the page.
func (p Page) Path() string {
	if p.Slug == "home" {
		return "/"
	}
	return "/" + p.Slug
}

func pages() []Page {
	return []Page{
		{Slug: "home", Title: "Overview", Icon: "fas fa-home", body: homePage},
		{Slug: "elements", Title: "Elements", Icon: "fas fa-cube", body: elementsPage},
		{Slug: "forms", Title: "Forms", Icon: "fas fa-keyboard", body: formsPage},
		{Slug: "layout", Title: "Layout", Icon: "fas fa-th-large", body: layoutPage},
		{Slug: "navigation", Title: "Navigation", Icon: "fas fa-compass", body: navigationPage},
		{Slug: "components", Title: "Components", Icon: "fas fa-layer-group", body: componentsPage},
		{Slug: "demos", Title: "Interactive demos", Icon: "fas fa-hand-pointer", body: demosPage},
		{Slug: "docs", Title: "Guide", Icon: "fas fa-book", body: docsPage},
	}
}

// example renders a titled gallery entry.
func example(title string, body ...templ.Component) templ.Component {
	return bulma.Block(bulma.Base{},
		bulma.Title(bulma.TitleProps{Size: bulma.H4}, bulma.Text(title)),
		bulma.Box(bulma.Base{}, body...),
	)
}

func homePage(s *Showcase) templ.Component {
	cfg := s.Config()
	return bulma.Group(
		bulma.Hero(bulma.HeroProps{Color: cfg.AccentValue(), Bold: true},
			bulma.HeroBody(bulma.Base{},
				bulma.Title(bulma.TitleProps{Size: bulma.H1}, bulma.Text(cfg.Title)),
				bulma.Subtitle(bulma.SubtitleProps{Size: bulma.H4}, bulma.Text("Bulma components as Go functions, wired for htmx")),
			),
		),
		bulma.Section(bulma.SectionProps{},
			bulma.Columns(bulma.ColumnsProps{Multiline: true},
				overviewCard("Elements", "Buttons, tags, titles, notifications and more.", "/elements"),
				overviewCard("Forms", "Inputs, selects, checkboxes and file uploads.", "/forms"),
				overviewCard("Interactive", "Server driven demos keeping their state in the page.", "/demos"),
			),
		),
	)
}

func overviewCard(title, text, path string) templ.Component {
	return bulma.Column(bulma.ColumnProps{Size: bulma.ColumnOneThird},
		bulma.Card(bulma.Base{},
			bulma.CardHeader(bulma.Base{}, bulma.CardHeaderTitle(bulma.CardHeaderTitleProps{}, bulma.Text(title))),
			bulma.CardContent(bulma.Base{}, bulma.Content(bulma.ContentProps{}, bulma.Text(text))),
			bulma.CardFooter(bulma.Base{},
				bulma.CardFooterItem(bulma.CardFooterItemProps{To: pageLink(path)}, bulma.Text("Open")),
			),
		),
	)
}

func elementsPage(_ *Showcase) templ.Component {
	colors := make([]templ.Component, 0, len(bulma.Colors()))
	tags := make([]templ.Component, 0, len(bulma.Colors()))
	for _, c := range bulma.Colors() {
		colors = append(colors, bulma.Button(bulma.ButtonProps{Color: c}, bulma.Text(c.String())))
		tags = append(tags, bulma.Tag(bulma.TagProps{Color: c}, bulma.Text(c.String())))
	}
	progress := bulma.Value(60)
	return bulma.Group(
		example("Button colors", bulma.Buttons(bulma.ButtonsProps{}, colors...)),
		example("Button states",
			bulma.Buttons(bulma.ButtonsProps{},
				bulma.Button(bulma.ButtonProps{Outlined: true}, bulma.Text("Outlined")),
				bulma.Button(bulma.ButtonProps{Rounded: true}, bulma.Text("Rounded")),
				bulma.Button(bulma.ButtonProps{Loading: true}, bulma.Text("Loading")),
				bulma.Button(bulma.ButtonProps{Disabled: true, Href: "/"}, bulma.Text("Disabled link")),
				bulma.Button(bulma.ButtonProps{Color: bulma.ColorNone, Href: "https://bulma.io"}, bulma.Text("External")),
			),
			bulma.Buttons(bulma.ButtonsProps{Size: bulma.SizeSmall, Addons: true},
				bulma.Button(bulma.ButtonProps{Color: bulma.ColorNone}, bulma.Text("Left")),
				bulma.Button(bulma.ButtonProps{Color: bulma.ColorNone}, bulma.Text("Center")),
				bulma.Button(bulma.ButtonProps{Color: bulma.ColorNone}, bulma.Text("Right")),
			),
		),
		example("Tags",
			bulma.Tags(bulma.TagsProps{}, tags...),
			bulma.Tags(bulma.TagsProps{Addons: true},
				bulma.Tag(bulma.TagProps{Color: bulma.ColorDark}, bulma.Text("htmx")),
				bulma.Tag(bulma.TagProps{Color: bulma.ColorInfo}, bulma.Text("2.0")),
				bulma.Tag(bulma.TagProps{Delete: true, OnDelete: bulma.Script("this.parentElement.remove()")}),
			),
		),
		example("Titles",
			bulma.Title(bulma.TitleProps{Size: bulma.H2, Spaced: true}, bulma.Text("Title 2")),
			bulma.Subtitle(bulma.SubtitleProps{Size: bulma.H4}, bulma.Text("Subtitle 4")),
			bulma.Heading(bulma.Base{}, bulma.Text("Heading")),
		),
		example("Notification and message",
			bulma.Notification(bulma.NotificationProps{Color: bulma.ColorWarning, Light: true, Dismissible: true},
				bulma.Text("Dismissed in the browser without a request.")),
			bulma.Message(bulma.MessageProps{Color: bulma.ColorInfo},
				bulma.MessageHeader(bulma.MessageHeaderProps{Closable: true}, bulma.Text("Message")),
				bulma.MessageBody(bulma.Base{}, bulma.Text("Messages are colored blocks with an optional header.")),
			),
		),
		example("Progress",
			bulma.Progress(bulma.ProgressProps{Value: progress, Color: bulma.ColorSuccess}),
			bulma.Progress(bulma.ProgressProps{Size: bulma.SizeSmall, Color: bulma.ColorInfo}),
		),
		example("Icons and images",
			bulma.Icon(bulma.IconProps{Name: "fas fa-check", Color: bulma.ColorSuccess}),
			bulma.Icon(bulma.IconProps{Name: "fas fa-exclamation-triangle", Color: bulma.ColorWarning, Size: bulma.SizeLarge}),
			bulma.Image(bulma.ImageProps{Size: bulma.Image128x128, Rounded: true, Src: "https://bulma.io/assets/images/placeholders/128x128.png", Alt: "Placeholder"}),
		),
		example("Delete", bulma.Delete(bulma.DeleteProps{Size: bulma.SizeLarge})),
	)
}

func formsPage(_ *Showcase) templ.Component {
	return bulma.Group(
		example("Inputs",
			bulma.Field(bulma.FieldProps{},
				bulma.Label(bulma.LabelProps{For: "name"}, bulma.Text("Name")),
				bulma.Control(bulma.ControlProps{IconsLeft: true},
					bulma.Input(bulma.InputProps{Name: "name", Placeholder: "Ada Lovelace", Base: bulma.Base{ID: "name"}}),
					bulma.Icon(bulma.IconProps{Name: "fas fa-user", Size: bulma.SizeSmall, Base: bulma.Base{Class: "is-left"}}),
				),
			),
			bulma.Field(bulma.FieldProps{},
				bulma.Label(bulma.LabelProps{}, bulma.Text("Email")),
				bulma.Control(bulma.ControlProps{},
					bulma.Input(bulma.InputProps{Type: bulma.InputEmail, Name: "email", Value: "not-an-email", Color: bulma.ColorDanger}),
				),
				bulma.Help(bulma.HelpProps{Color: bulma.ColorDanger}, bulma.Text("This email is invalid")),
			),
			bulma.Field(bulma.FieldProps{},
				bulma.Control(bulma.ControlProps{Loading: true},
					bulma.Input(bulma.InputProps{Placeholder: "Loading", Rounded: true, ReadOnly: true}),
				),
			),
		),
		example("Textarea and select",
			bulma.Field(bulma.FieldProps{},
				bulma.Control(bulma.ControlProps{}, bulma.Textarea(bulma.TextareaProps{Placeholder: "Message", Rows: 3})),
			),
			bulma.Field(bulma.FieldProps{},
				bulma.Control(bulma.ControlProps{},
					bulma.Select(bulma.SelectProps{
						Name:  "size",
						Value: "medium",
						Options: []bulma.SelectOption{
							{Value: "small", Label: "Small"},
							{Value: "medium", Label: "Medium"},
							{Value: "large", Label: "Large"},
						},
					}),
				),
			),
		),
		example("Checkboxes and radios",
			bulma.Checkboxes(bulma.Base{},
				bulma.Checkbox(bulma.CheckboxProps{Name: "terms", Checked: true}, bulma.Text("I agree")),
				bulma.Checkbox(bulma.CheckboxProps{Name: "news", Disabled: true}, bulma.Text("Newsletter")),
			),
			bulma.Radios(bulma.Base{},
				bulma.Radio(bulma.RadioProps{Name: "answer", Value: "yes", Checked: true}, bulma.Text("Yes")),
				bulma.Radio(bulma.RadioProps{Name: "answer", Value: "no"}, bulma.Text("No")),
			),
		),
		example("File",
			bulma.File(bulma.FileProps{Name: "upload", HasName: true, FileName: "report.pdf", Color: bulma.ColorInfo}),
		),
		example("Horizontal and grouped fields",
			bulma.Field(bulma.FieldProps{Horizontal: true},
				bulma.FieldLabel(bulma.FieldLabelProps{Size: bulma.SizeNormal}, bulma.Label(bulma.LabelProps{}, bulma.Text("From"))),
				bulma.FieldBody(bulma.Base{},
					bulma.Field(bulma.FieldProps{Grouped: true},
						bulma.Control(bulma.ControlProps{Expanded: true}, bulma.Input(bulma.InputProps{Placeholder: "Name"})),
						bulma.Control(bulma.ControlProps{}, bulma.Button(bulma.ButtonProps{}, bulma.Text("Send"))),
					),
				),
			),
		),
	)
}

func layoutPage(_ *Showcase) templ.Component {
	return bulma.Group(
		example("Columns",
			bulma.Columns(bulma.ColumnsProps{Mobile: true},
				bulma.Column(bulma.ColumnProps{Size: bulma.ColumnHalf}, bulma.Notification(bulma.NotificationProps{Color: bulma.ColorPrimary}, bulma.Text("half"))),
				bulma.Column(bulma.ColumnProps{}, bulma.Notification(bulma.NotificationProps{Color: bulma.ColorInfo}, bulma.Text("auto"))),
				bulma.Column(bulma.ColumnProps{Narrow: true}, bulma.Notification(bulma.NotificationProps{Color: bulma.ColorLink}, bulma.Text("narrow"))),
			),
			bulma.Columns(bulma.ColumnsProps{},
				bulma.Column(bulma.ColumnProps{Size: bulma.Column4, Offset: bulma.Column4}, bulma.Notification(bulma.NotificationProps{Color: bulma.ColorNone}, bulma.Text("offset"))),
			),
		),
		example("Level",
			bulma.Level(bulma.LevelProps{},
				bulma.LevelItem(bulma.Base{Class: "has-text-centered"}, bulma.Group(bulma.Heading(bulma.Base{}, bulma.Text("Tweets")), bulma.Title(bulma.TitleProps{}, bulma.Text("3,456")))),
				bulma.LevelItem(bulma.Base{Class: "has-text-centered"}, bulma.Group(bulma.Heading(bulma.Base{}, bulma.Text("Following")), bulma.Title(bulma.TitleProps{}, bulma.Text("123")))),
			),
		),
		example("Media object",
			bulma.Media(bulma.Base{},
				bulma.MediaLeft(bulma.Base{}, bulma.Image(bulma.ImageProps{Size: bulma.Image64x64, Src: "https://bulma.io/assets/images/placeholders/128x128.png"})),
				bulma.MediaContent(bulma.Base{}, bulma.Content(bulma.ContentProps{}, bulma.Text("A media object pairs an image with content."))),
				bulma.MediaRight(bulma.Base{}, bulma.Delete(bulma.DeleteProps{})),
			),
		),
		example("Container and section",
			bulma.Container(bulma.ContainerProps{Fluid: true},
				bulma.Notification(bulma.NotificationProps{Color: bulma.ColorNone}, bulma.Text("A fluid container keeps side margins at every width.")),
			),
		),
	)
}

func navigationPage(_ *Showcase) templ.Component {
	return bulma.Group(
		example("Navbar",
			bulma.Navbar(bulma.NavbarProps{Color: bulma.ColorLight},
				bulma.NavbarBrand(bulma.Base{},
					bulma.NavbarItem(bulma.NavbarItemProps{To: pageLink("/")}, bulma.Text("Brand")),
					bulma.NavbarBurger(bulma.NavbarBurgerProps{Target: "demo-navbar"}),
				),
				bulma.NavbarMenu(bulma.NavbarMenuProps{Base: bulma.Base{ID: "demo-navbar"}},
					bulma.NavbarStart(bulma.Base{},
						bulma.NavbarItem(bulma.NavbarItemProps{To: pageLink("/elements")}, bulma.Text("Elements")),
						bulma.NavbarItem(bulma.NavbarItemProps{HasDropdown: true, Hoverable: true},
							bulma.NavbarLink(bulma.NavbarLinkProps{}, bulma.Text("More")),
							bulma.NavbarDropdown(bulma.NavbarDropdownProps{},
								bulma.NavbarItem(bulma.NavbarItemProps{To: pageLink("/forms")}, bulma.Text("Forms")),
								bulma.NavbarDivider(bulma.Base{}),
								bulma.NavbarItem(bulma.NavbarItemProps{Href: "https://bulma.io"}, bulma.Text("Bulma")),
							),
						),
					),
				),
			),
		),
		example("Breadcrumb",
			bulma.Breadcrumb(bulma.BreadcrumbProps{Separator: bulma.SeparatorSucceeds},
				bulma.BreadcrumbItem(bulma.BreadcrumbItemProps{To: pageLink("/")}, bulma.Text("Overview")),
				bulma.BreadcrumbItem(bulma.BreadcrumbItemProps{To: pageLink("/navigation")}, bulma.Text("Navigation")),
				bulma.BreadcrumbItem(bulma.BreadcrumbItemProps{Active: true}, bulma.Text("Breadcrumb")),
			),
		),
		example("Tabs",
			bulma.Tabs(bulma.TabsProps{Style: bulma.TabsToggleRounded, Alignment: bulma.AlignCentered},
				bulma.Tab(bulma.TabProps{Active: true, Href: "#"}, bulma.Text("Active")),
				bulma.Tab(bulma.TabProps{Href: "#"}, bulma.Text("Other")),
				bulma.Tab(bulma.TabProps{Href: "#", Disabled: true}, bulma.Text("Disabled")),
			),
		),
		example("Pagination",
			bulma.Pager(bulma.PagerProps{
				Current: 7,
				Total:   20,
				Link:    func(page int) bulma.Link { return pageLink(fmt.Sprintf("/navigation?page=%d", page)) },
			}),
		),
		example("Menu",
			bulma.Menu(bulma.Base{},
				bulma.MenuLabel(bulma.Base{}, bulma.Text("General")),
				bulma.MenuList(bulma.Base{},
					bulma.MenuItem(bulma.MenuItemProps{Href: "#", Active: true}, bulma.Text("Dashboard")),
					bulma.MenuItem(bulma.MenuItemProps{
						Href: "#",
						Sub: bulma.MenuList(bulma.Base{},
							bulma.MenuItem(bulma.MenuItemProps{Href: "#"}, bulma.Text("Members")),
						),
					}, bulma.Text("Team")),
				),
			),
		),
		example("Panel",
			bulma.Panel(bulma.PanelProps{Color: bulma.ColorPrimary},
				bulma.PanelHeading(bulma.Base{}, bulma.Text("Repositories")),
				bulma.PanelBlock(bulma.PanelBlockProps{Active: true, Href: "#"},
					bulma.PanelIcon(bulma.PanelIconProps{Name: "fas fa-book"}), bulma.Text("bulma")),
				bulma.PanelBlock(bulma.PanelBlockProps{Href: "#"},
					bulma.PanelIcon(bulma.PanelIconProps{Name: "fas fa-book"}), bulma.Text("htmx")),
			),
		),
	)
}

func componentsPage(_ *Showcase) templ.Component {
	return bulma.Group(
		example("Card",
			bulma.Card(bulma.Base{Style: "max-width: 24rem;"},
				bulma.CardHeader(bulma.Base{},
					bulma.CardHeaderTitle(bulma.CardHeaderTitleProps{}, bulma.Text("Order #1024")),
					bulma.CardHeaderIcon(bulma.CardHeaderIconProps{Label: "more options"}, bulma.Icon(bulma.IconProps{Name: "fas fa-angle-down"})),
				),
				bulma.CardContent(bulma.Base{}, bulma.Content(bulma.ContentProps{}, bulma.Text("Three items, shipped yesterday."))),
				bulma.CardFooter(bulma.Base{},
					bulma.CardFooterItem(bulma.CardFooterItemProps{Href: "#"}, bulma.Text("Track")),
					bulma.CardFooterItem(bulma.CardFooterItemProps{}, bulma.Text("€42.00")),
				),
			),
		),
		example("Dropdown",
			bulma.Dropdown(bulma.DropdownProps{Hoverable: true},
				bulma.DropdownTrigger(bulma.DropdownTriggerProps{},
					bulma.Button(bulma.ButtonProps{Color: bulma.ColorNone}, bulma.Text("Hover me")),
				),
				bulma.DropdownMenu(bulma.Base{},
					bulma.DropdownItem(bulma.DropdownItemProps{Href: "#"}, bulma.Text("First")),
					bulma.DropdownItem(bulma.DropdownItemProps{Href: "#", Active: true}, bulma.Text("Active")),
					bulma.DropdownDivider(bulma.Base{}),
					bulma.DropdownItem(bulma.DropdownItemProps{}, bulma.Text("Plain")),
				),
			),
		),
		example("Modal",
			bulma.Button(bulma.ButtonProps{OnClick: bulma.Script("document.getElementById('gallery-modal').classList.add('is-active')")}, bulma.Text("Open")),
			bulma.Modal(bulma.ModalProps{Closable: true, Base: bulma.Base{ID: "gallery-modal"}},
				bulma.ModalContent(bulma.Base{}, bulma.Box(bulma.Base{}, bulma.Text("Closed in the browser."))),
			),
		),
		example("Table",
			bulma.TableContainer(bulma.Base{},
				bulma.Table(bulma.TableProps{Bordered: true, Hoverable: true, FullWidth: true},
					templ.Raw("<thead><tr><th>Component</th><th>Element</th></tr></thead>"+
						"<tbody><tr><td>Button</td><td>button or a</td></tr><tr><td>Tabs</td><td>div.tabs &gt; ul</td></tr></tbody>"),
				),
			),
		),
	)
}

func demosPage(s *Showcase) templ.Component {
	items := make([]templ.Component, 0, len(s.demos))
	for _, d := range s.demos {
		items = append(items, bulma.Block(bulma.Base{},
			bulma.Title(bulma.TitleProps{Size: bulma.H4}, bulma.Text(d.Title())),
			d.Initial(),
		))
	}
	return bulma.Group(items...)
}

func docsPage(_ *Showcase) templ.Component {
	return bulma.Columns(bulma.ColumnsProps{},
		bulma.Column(bulma.ColumnProps{}, markdown.Render(guide, markdown.Options{})),
		bulma.Column(bulma.ColumnProps{Size: bulma.ColumnOneQuarter},
			markdown.TOC(markdown.Headings(guide), 2, "On this page"),
		),
	)
}
