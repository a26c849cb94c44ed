package bulma

import (
	"slices"
	"strconv"
	"strings"
)

// parseVariant resolves s against a closed set of variants.
// Matching ignores case and surrounding whitespace.
func parseVariant[T ~string](kind, s string, all []T) (T, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, v := range all {
		if string(v) == norm {
			return v, nil
		}
	}
	var zero T
	return zero, unknownVariant(kind, s)
}

// Color is one of Bulma's named colors.
//
// The zero value means "no color": the component either renders none or
// applies its own default (Button and Notification default to ColorPrimary).
// Use ColorNone to opt out of such a default.
type Color string

const (
	ColorWhite   Color = "white"
	ColorLight   Color = "light"
	ColorDark    Color = "dark"
	ColorBlack   Color = "black"
	ColorText    Color = "text"
	ColorGhost   Color = "ghost"
	ColorPrimary Color = "primary"
	ColorLink    Color = "link"
	ColorInfo    Color = "info"
	ColorSuccess Color = "success"
	ColorWarning Color = "warning"
	ColorDanger  Color = "danger"

	// ColorNone explicitly disables a component's default color.
	ColorNone Color = "none"
)

var colors = []Color{
	ColorWhite, ColorLight, ColorDark, ColorBlack, ColorText, ColorGhost,
	ColorPrimary, ColorLink, ColorInfo, ColorSuccess, ColorWarning, ColorDanger,
}

// Colors returns every named color in declaration order.
func Colors() []Color {
	return slices.Clone(colors)
}

// ParseColor parses a color name such as "danger". "none" yields ColorNone.
func ParseColor(s string) (Color, error) {
	if strings.EqualFold(strings.TrimSpace(s), string(ColorNone)) {
		return ColorNone, nil
	}
	return parseVariant("color", s, colors)
}

// Valid reports whether c is one of the named colors.
func (c Color) Valid() bool {
	return slices.Contains(colors, c)
}

// String returns the bare color name, e.g. "danger".
func (c Color) String() string {
	return string(c)
}

// Class returns the modifier class, e.g. "is-danger", or "" for the zero
// value, ColorNone and unknown values.
func (c Color) Class() string {
	if !c.Valid() {
		return ""
	}
	return "is-" + string(c)
}

// TextClass returns the text color helper, e.g. "has-text-danger".
func (c Color) TextClass() string {
	if !c.Valid() {
		return ""
	}
	return "has-text-" + string(c)
}

// or returns c, or def when c is the zero value.
func (c Color) or(def Color) Color {
	if c == "" {
		return def
	}
	return c
}

// Size is one of Bulma's four sizes. The zero value is SizeNormal.
type Size string

const (
	SizeSmall  Size = "small"
	SizeNormal Size = "normal"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

var sizes = []Size{SizeSmall, SizeNormal, SizeMedium, SizeLarge}

// Sizes returns every size from smallest to largest.
func Sizes() []Size {
	return slices.Clone(sizes)
}

// ParseSize parses a size name such as "large".
func ParseSize(s string) (Size, error) {
	return parseVariant("size", s, sizes)
}

// String returns the size name. The zero value reports "normal".
func (s Size) String() string {
	if s == "" {
		return string(SizeNormal)
	}
	return string(s)
}

// Class returns the size modifier. Normal size is Bulma's default and has
// no modifier class.
func (s Size) Class() string {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return "is-" + string(s)
	}
	return ""
}

// Alignment positions a group of items. The zero value is AlignLeft.
type Alignment string

const (
	AlignLeft     Alignment = "left"
	AlignCentered Alignment = "centered"
	AlignRight    Alignment = "right"
)

var alignments = []Alignment{AlignLeft, AlignCentered, AlignRight}

// Alignments returns every alignment.
func Alignments() []Alignment {
	return slices.Clone(alignments)
}

// ParseAlignment parses "left", "centered" or "right".
func ParseAlignment(s string) (Alignment, error) {
	return parseVariant("alignment", s, alignments)
}

// Class returns "is-centered" or "is-right". Left is the default and has no class.
func (a Alignment) Class() string {
	switch a {
	case AlignCentered, AlignRight:
		return "is-" + string(a)
	}
	return ""
}

// Theme selects the color scheme applied by Provider.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

var themes = []Theme{ThemeAuto, ThemeLight, ThemeDark}

// Themes returns every theme.
func Themes() []Theme {
	return slices.Clone(themes)
}

// ParseTheme parses "auto", "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	return parseVariant("theme", s, themes)
}

// Class returns "theme-auto", "theme-light" or "theme-dark".
// The zero value and unknown values map to "theme-auto".
func (t Theme) Class() string {
	if !slices.Contains(themes, t) {
		t = ThemeAuto
	}
	return "theme-" + string(t)
}

// TabsStyle selects the visual style of Tabs. The zero value is TabsDefault.
type TabsStyle string

const (
	TabsDefault       TabsStyle = "default"
	TabsBoxed         TabsStyle = "boxed"
	TabsToggle        TabsStyle = "toggle"
	TabsToggleRounded TabsStyle = "toggle-rounded"
)

var tabsStyles = []TabsStyle{TabsDefault, TabsBoxed, TabsToggle, TabsToggleRounded}

// ParseTabsStyle parses a tabs style name.
func ParseTabsStyle(s string) (TabsStyle, error) {
	return parseVariant("tabs style", s, tabsStyles)
}

// Class returns the style modifiers. TabsToggleRounded needs both toggle
// classes and so yields two tokens.
func (s TabsStyle) Class() string {
	switch s {
	case TabsBoxed:
		return "is-boxed"
	case TabsToggle:
		return "is-toggle"
	case TabsToggleRounded:
		return "is-toggle is-toggle-rounded"
	}
	return ""
}

// Separator is the divider drawn between Breadcrumb items.
// The zero value keeps Bulma's default slash.
type Separator string

const (
	SeparatorArrow    Separator = "arrow"
	SeparatorBullet   Separator = "bullet"
	SeparatorDot      Separator = "dot"
	SeparatorSucceeds Separator = "succeeds"
)

var separators = []Separator{SeparatorArrow, SeparatorBullet, SeparatorDot, SeparatorSucceeds}

// ParseSeparator parses a separator name such as "arrow".
func ParseSeparator(s string) (Separator, error) {
	return parseVariant("separator", s, separators)
}

// Class returns e.g. "has-arrow-separator".
func (s Separator) Class() string {
	if !slices.Contains(separators, s) {
		return ""
	}
	return "has-" + string(s) + "-separator"
}

// Breakpoint constrains a Container's maximum width.
type Breakpoint string

const (
	BreakpointWidescreen    Breakpoint = "widescreen"
	BreakpointFullHD        Breakpoint = "fullhd"
	BreakpointMaxDesktop    Breakpoint = "max-desktop"
	BreakpointMaxWidescreen Breakpoint = "max-widescreen"
)

var breakpoints = []Breakpoint{BreakpointWidescreen, BreakpointFullHD, BreakpointMaxDesktop, BreakpointMaxWidescreen}

// ParseBreakpoint parses a breakpoint name such as "fullhd".
func ParseBreakpoint(s string) (Breakpoint, error) {
	return parseVariant("breakpoint", s, breakpoints)
}

// Class returns e.g. "is-fullhd".
func (b Breakpoint) Class() string {
	if !slices.Contains(breakpoints, b) {
		return ""
	}
	return "is-" + string(b)
}

// ColumnSize is a Column width, either a fraction name or a 12-grid count.
type ColumnSize string

const (
	ColumnThreeQuarters ColumnSize = "three-quarters"
	ColumnTwoThirds     ColumnSize = "two-thirds"
	ColumnHalf          ColumnSize = "half"
	ColumnOneThird      ColumnSize = "one-third"
	ColumnOneQuarter    ColumnSize = "one-quarter"
	ColumnFull          ColumnSize = "full"
	ColumnFourFifths    ColumnSize = "four-fifths"
	ColumnThreeFifths   ColumnSize = "three-fifths"
	ColumnTwoFifths     ColumnSize = "two-fifths"
	ColumnOneFifth      ColumnSize = "one-fifth"
	ColumnNarrow        ColumnSize = "narrow"
	Column1             ColumnSize = "1"
	Column2             ColumnSize = "2"
	Column3             ColumnSize = "3"
	Column4             ColumnSize = "4"
	Column5             ColumnSize = "5"
	Column6             ColumnSize = "6"
	Column7             ColumnSize = "7"
	Column8             ColumnSize = "8"
	Column9             ColumnSize = "9"
	Column10            ColumnSize = "10"
	Column11            ColumnSize = "11"
	Column12            ColumnSize = "12"
)

var columnSizes = []ColumnSize{
	ColumnThreeQuarters, ColumnTwoThirds, ColumnHalf, ColumnOneThird, ColumnOneQuarter,
	ColumnFull, ColumnFourFifths, ColumnThreeFifths, ColumnTwoFifths, ColumnOneFifth,
	ColumnNarrow,
	Column1, Column2, Column3, Column4, Column5, Column6,
	Column7, Column8, Column9, Column10, Column11, Column12,
}

// ColumnSizes returns every column size.
func ColumnSizes() []ColumnSize {
	return slices.Clone(columnSizes)
}

// ParseColumnSize parses "half", "one-third", "4" and so on.
func ParseColumnSize(s string) (ColumnSize, error) {
	return parseVariant("column size", s, columnSizes)
}

// Class returns e.g. "is-half" or "is-4".
func (s ColumnSize) Class() string {
	if !slices.Contains(columnSizes, s) {
		return ""
	}
	return "is-" + string(s)
}

// OffsetClass returns the matching offset modifier, e.g. "is-offset-half".
func (s ColumnSize) OffsetClass() string {
	if !slices.Contains(columnSizes, s) {
		return ""
	}
	return "is-offset-" + string(s)
}

// ImageSize is a fixed square dimension or an aspect ratio for Image.
type ImageSize string

const (
	Image16x16   ImageSize = "16x16"
	Image24x24   ImageSize = "24x24"
	Image32x32   ImageSize = "32x32"
	Image48x48   ImageSize = "48x48"
	Image64x64   ImageSize = "64x64"
	Image96x96   ImageSize = "96x96"
	Image128x128 ImageSize = "128x128"
	ImageSquare  ImageSize = "square"
	Image1by1    ImageSize = "1by1"
	Image5by4    ImageSize = "5by4"
	Image4by3    ImageSize = "4by3"
	Image3by2    ImageSize = "3by2"
	Image5by3    ImageSize = "5by3"
	Image16by9   ImageSize = "16by9"
	Image2by1    ImageSize = "2by1"
	Image3by1    ImageSize = "3by1"
	Image4by5    ImageSize = "4by5"
	Image3by4    ImageSize = "3by4"
	Image2by3    ImageSize = "2by3"
	Image3by5    ImageSize = "3by5"
	Image9by16   ImageSize = "9by16"
	Image1by2    ImageSize = "1by2"
	Image1by3    ImageSize = "1by3"
)

var imageSizes = []ImageSize{
	Image16x16, Image24x24, Image32x32, Image48x48, Image64x64, Image96x96, Image128x128,
	ImageSquare, Image1by1, Image5by4, Image4by3, Image3by2, Image5by3, Image16by9,
	Image2by1, Image3by1, Image4by5, Image3by4, Image2by3, Image3by5, Image9by16,
	Image1by2, Image1by3,
}

// ImageSizes returns every image size.
func ImageSizes() []ImageSize {
	return slices.Clone(imageSizes)
}

// ParseImageSize parses "128x128", "16by9" and so on.
func ParseImageSize(s string) (ImageSize, error) {
	return parseVariant("image size", s, imageSizes)
}

// Class returns e.g. "is-16by9".
func (s ImageSize) Class() string {
	if !slices.Contains(imageSizes, s) {
		return ""
	}
	return "is-" + string(s)
}

// InputType is the HTML type of an Input. The zero value is InputText.
type InputType string

const (
	InputText     InputType = "text"
	InputPassword InputType = "password"
	InputEmail    InputType = "email"
	InputTel      InputType = "tel"
	InputNumber   InputType = "number"
	InputSearch   InputType = "search"
	InputURL      InputType = "url"
)

var inputTypes = []InputType{InputText, InputPassword, InputEmail, InputTel, InputNumber, InputSearch, InputURL}

// ParseInputType parses an input type such as "email".
func ParseInputType(s string) (InputType, error) {
	return parseVariant("input type", s, inputTypes)
}

// String returns the HTML type attribute value.
func (t InputType) String() string {
	if !slices.Contains(inputTypes, t) {
		return string(InputText)
	}
	return string(t)
}

// TitleSize is a heading level from 1 to 6. It picks both the element
// (h1 to h6) and the matching "is-N" size class.
type TitleSize int

const (
	H1 TitleSize = iota + 1
	H2
	H3
	H4
	H5
	H6
)

// ParseTitleSize parses "1" through "6", optionally prefixed with "h" or "is-".
func ParseTitleSize(s string) (TitleSize, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.TrimPrefix(strings.TrimPrefix(norm, "is-"), "h")
	n, err := strconv.Atoi(norm)
	if err != nil || !TitleSize(n).Valid() {
		return 0, unknownVariant("title size", s)
	}
	return TitleSize(n), nil
}

// Valid reports whether s is between H1 and H6.
func (s TitleSize) Valid() bool {
	return s >= H1 && s <= H6
}

// Class returns e.g. "is-3".
func (s TitleSize) Class() string {
	if !s.Valid() {
		return ""
	}
	return "is-" + strconv.Itoa(int(s))
}

// Tag returns the heading element name, e.g. "h3".
func (s TitleSize) Tag() string {
	if !s.Valid() {
		return ""
	}
	return "h" + strconv.Itoa(int(s))
}

func (s TitleSize) or(def TitleSize) TitleSize {
	if !s.Valid() {
		return def
	}
	return s
}

// TileSize is a Tile width on the 12-column grid. Zero means unset.
type TileSize int

// ParseTileSize parses "1" through "12".
func ParseTileSize(s string) (TileSize, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "is-"))
	if err != nil || !TileSize(n).Valid() {
		return 0, unknownVariant("tile size", s)
	}
	return TileSize(n), nil
}

// Valid reports whether s is between 1 and 12.
func (s TileSize) Valid() bool {
	return s >= 1 && s <= 12
}

// Class returns e.g. "is-4".
func (s TileSize) Class() string {
	if !s.Valid() {
		return ""
	}
	return "is-" + strconv.Itoa(int(s))
}
