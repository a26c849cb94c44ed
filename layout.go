package bulma

import "github.com/a-h/templ"

// SectionProps configures a Section.
type SectionProps struct {
	Base
	// Size sets the vertical padding; only medium and large have an effect.
	Size Size
}

// Section renders a page section with standard padding.
func Section(props SectionProps, children ...templ.Component) templ.Component {
	return container("section", NewClasses("section", props.Size.Class()), props.Base, children)
}

// ContainerProps configures a Container.
type ContainerProps struct {
	Base
	// Fluid removes the maximum width, keeping the side margins.
	Fluid bool
	// Breakpoint makes the container full width below it.
	Breakpoint Breakpoint
}

// Container centers content horizontally.
func Container(props ContainerProps, children ...templ.Component) templ.Component {
	classes := NewClasses("container").
		AddIf(props.Fluid, "is-fluid").
		Add(props.Breakpoint.Class())
	return container("div", classes, props.Base, children)
}

// ContentProps configures a Content block.
type ContentProps struct {
	Base
	Size Size
}

// Content styles raw HTML such as rendered Markdown: headings, lists,
// quotes and tables get sensible spacing.
func Content(props ContentProps, children ...templ.Component) templ.Component {
	return container("div", NewClasses("content", props.Size.Class()), props.Base, children)
}

// Box renders a white box with a shadow.
func Box(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("box"), b, children)
}

// Block spaces its siblings with a standard bottom margin.
func Block(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("block"), b, children)
}

// HeroProps configures a Hero.
type HeroProps struct {
	Base
	Color Color
	// Size is the hero height. SizeNormal and SizeSmall keep the padding-only height.
	Size Size
	// FullHeight stretches the hero to the viewport height.
	FullHeight bool
	// Bold applies a gradient to the background color.
	Bold bool
}

// Hero renders a full-width banner. Compose it with HeroHead, HeroBody and HeroFoot.
func Hero(props HeroProps, children ...templ.Component) templ.Component {
	classes := NewClasses("hero").
		Add(props.Color.Class(), props.Size.Class()).
		AddIf(props.FullHeight, "is-fullheight").
		AddIf(props.Bold, "is-bold")
	return container("section", classes, props.Base, children)
}

// HeroHead renders the top area of a hero, typically a Navbar.
func HeroHead(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("hero-head"), b, children)
}

// HeroBody renders the vertically centered body of a hero.
func HeroBody(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("hero-body"), b, children)
}

// HeroFoot renders the bottom area of a hero, typically Tabs.
func HeroFoot(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("hero-foot"), b, children)
}

// ColumnsProps configures a Columns row.
type ColumnsProps struct {
	Base
	Multiline bool
	Gapless   bool
	// Mobile keeps columns side by side on mobile.
	Mobile bool
	// Desktop stacks columns until the desktop breakpoint.
	Desktop   bool
	Centered  bool
	VCentered bool
}

// Columns renders a flexbox row of Column elements.
func Columns(props ColumnsProps, children ...templ.Component) templ.Component {
	classes := NewClasses("columns").
		AddIf(props.Multiline, "is-multiline").
		AddIf(props.Gapless, "is-gapless").
		AddIf(props.Mobile, "is-mobile").
		AddIf(props.Desktop, "is-desktop").
		AddIf(props.Centered, "is-centered").
		AddIf(props.VCentered, "is-vcentered")
	return container("div", classes, props.Base, children)
}

// ColumnProps configures a Column.
type ColumnProps struct {
	Base
	Size   ColumnSize
	Offset ColumnSize
	// Narrow shrinks the column to its content.
	Narrow bool
}

// Column renders one column of a Columns row.
func Column(props ColumnProps, children ...templ.Component) templ.Component {
	classes := NewClasses("column").
		Add(props.Size.Class(), props.Offset.OffsetClass()).
		AddIf(props.Narrow && props.Size != ColumnNarrow, "is-narrow")
	return container("div", classes, props.Base, children)
}

// TileProps configures a Tile.
type TileProps struct {
	Base
	Ancestor bool
	Parent   bool
	Child    bool
	Vertical bool
	Size     TileSize
}

// Tile builds two-dimensional grids. The outermost tile is an Ancestor,
// tiles holding content are Children, and Parents sit in between.
func Tile(props TileProps, children ...templ.Component) templ.Component {
	classes := NewClasses("tile").
		AddIf(props.Ancestor, "is-ancestor").
		AddIf(props.Parent, "is-parent").
		AddIf(props.Child, "is-child").
		AddIf(props.Vertical, "is-vertical").
		Add(props.Size.Class())
	return container("div", classes, props.Base, children)
}

// LevelProps configures a Level.
type LevelProps struct {
	Base
	// Mobile keeps the level horizontal on mobile.
	Mobile bool
}

// Level renders a horizontal bar with LevelLeft, LevelRight and centered LevelItems.
func Level(props LevelProps, children ...templ.Component) templ.Component {
	return container("nav", NewClasses("level").AddIf(props.Mobile, "is-mobile"), props.Base, children)
}

// LevelLeft renders the left side of a Level.
func LevelLeft(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("level-left"), b, children)
}

// LevelRight renders the right side of a Level.
func LevelRight(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("level-right"), b, children)
}

// LevelItem renders one item of a Level.
func LevelItem(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("level-item"), b, children)
}

// Media renders the media object: an image on the left, content beside it.
func Media(b Base, children ...templ.Component) templ.Component {
	return container("article", NewClasses("media"), b, children)
}

// MediaLeft renders the left side of a Media object.
func MediaLeft(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("media-left"), b, children)
}

// MediaContent renders the main content of a Media object.
func MediaContent(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("media-content"), b, children)
}

// MediaRight renders the right side of a Media object.
func MediaRight(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("media-right"), b, children)
}
