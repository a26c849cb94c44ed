package bulma

import (
	"testing"

	"github.com/a-h/templ"
)

func TestFormLayout(t *testing.T) {
	tests := []struct {
		name   string
		c      templ.Component
		expect string
	}{
		{"field", Field(FieldProps{Grouped: true, Addons: true, Horizontal: true}), `<div class="field is-grouped has-addons is-horizontal"></div>`},
		{"field label", FieldLabel(FieldLabelProps{Size: SizeNormal}), `<div class="field-label"></div>`},
		{"field body", FieldBody(Base{}), `<div class="field-body"></div>`},
		{"label", Label(LabelProps{For: "email"}, Text("Email")), `<label class="label" for="email">Email</label>`},
		{"help", Help(HelpProps{Color: ColorDanger}, Text("Required")), `<p class="help is-danger">Required</p>`},
		{
			"control",
			Control(ControlProps{IconsLeft: true, IconsRight: true, Loading: true, Expanded: true, Size: SizeLarge}),
			`<div class="control has-icons-left has-icons-right is-loading is-expanded is-large"></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.c); got != tt.expect {
				t.Errorf("render = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestInput(t *testing.T) {
	tests := []struct {
		name   string
		props  InputProps
		expect string
	}{
		{"default", InputProps{}, `<input class="input" type="text">`},
		{
			"full",
			InputProps{
				Type: InputEmail, Name: "email", Value: "a@b.c", Placeholder: "Email",
				Color: ColorSuccess, Size: SizeSmall, Rounded: true, Loading: true, Focused: true,
				Disabled: true, ReadOnly: true, Required: true,
			},
			`<input class="input is-success is-small is-rounded is-loading is-focused" type="email" name="email" value="a@b.c" placeholder="Email" disabled readonly required>`,
		},
		{
			"live search",
			InputProps{Name: "q", OnInput: Get("/search").Target("#results")},
			`<input class="input" type="text" name="q" hx-get="/search" hx-target="#results" hx-trigger="input">`,
		},
		{
			"focus and blur scripts",
			InputProps{OnFocus: Script("f()"), OnBlur: Script("b()")},
			`<input class="input" type="text" onfocus="f()" onblur="b()">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, Input(tt.props)); got != tt.expect {
				t.Errorf("Input() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestTextarea(t *testing.T) {
	tests := []struct {
		name   string
		props  TextareaProps
		expect string
	}{
		{"default rows", TextareaProps{}, `<textarea class="textarea" rows="4"></textarea>`},
		{
			"value is escaped content",
			TextareaProps{Name: "bio", Value: "<hi>", Rows: 2, Cols: 40, FixedSize: true, Color: ColorInfo},
			`<textarea class="textarea is-info has-fixed-size" name="bio" rows="2" cols="40">&lt;hi&gt;</textarea>`,
		},
		{
			"change action",
			TextareaProps{OnChange: Post("/save")},
			`<textarea class="textarea" rows="4" hx-post="/save" hx-trigger="change"></textarea>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, Textarea(tt.props)); got != tt.expect {
				t.Errorf("Textarea() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestSelectWithChildren(t *testing.T) {
	got := render(t, Select(SelectProps{Name: "c", Color: ColorPrimary, Rounded: true},
		Option(OptionProps{}, Text("Choose")),
		Option(OptionProps{Value: "a", Selected: true}, Text("A")),
	))
	expect := `<div class="select is-primary is-rounded"><select name="c">` +
		`<option value="">Choose</option><option value="a" selected>A</option></select></div>`
	if got != expect {
		t.Errorf("Select() = %q, want %q", got, expect)
	}
}

func TestSelectOptions(t *testing.T) {
	result, err := TestRender(Select(SelectProps{
		Name:     "size",
		Value:    "m",
		Multiple: true,
		Rows:     3,
		OnChange: Get("/filter"),
		Options: []SelectOption{
			{Value: "s", Label: "Small"},
			{Value: "m", Label: "Medium"},
			{Value: "l", Disabled: true},
		},
	}))
	if err != nil {
		t.Fatal(err)
	}

	wrapper := result.Root()
	if !wrapper.HasClass("select", "is-multiple") {
		t.Errorf("wrapper class = %q", wrapper.Class())
	}
	sel := result.First("select")
	for _, attr := range []string{"multiple", "name", "size", "hx-get"} {
		if !sel.HasAttr(attr) {
			t.Errorf("select missing %s", attr)
		}
	}
	opts := result.Find("option")
	if len(opts) != 3 {
		t.Fatalf("found %d options, want 3", len(opts))
	}
	if opts[0].HasAttr("selected") || !opts[1].HasAttr("selected") {
		t.Error("only the matching option should be selected")
	}
	if opts[2].Text() != "l" || !opts[2].HasAttr("disabled") {
		t.Errorf("third option = %q disabled=%v", opts[2].Text(), opts[2].HasAttr("disabled"))
	}
}

func TestCheckbox(t *testing.T) {
	tests := []struct {
		name   string
		props  CheckboxProps
		expect string
	}{
		{
			"default value",
			CheckboxProps{Name: "agree"},
			`<label class="checkbox"><input type="checkbox" name="agree" value="on"> I agree</label>`,
		},
		{
			"checked disabled",
			CheckboxProps{Name: "agree", Value: "yes", Checked: true, Disabled: true},
			`<label class="checkbox" disabled><input type="checkbox" name="agree" value="yes" checked disabled> I agree</label>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, Checkbox(tt.props, Text("I agree"))); got != tt.expect {
				t.Errorf("Checkbox() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestRadio(t *testing.T) {
	got := render(t, Radios(Base{},
		Radio(RadioProps{Name: "answer", Value: "yes", Checked: true}, Text("Yes")),
		Radio(RadioProps{Name: "answer", Value: "no", OnChange: Post("/answer")}, Text("No")),
	))
	expect := `<div class="radios">` +
		`<label class="radio"><input type="radio" name="answer" value="yes" checked> Yes</label>` +
		`<label class="radio"><input type="radio" name="answer" value="no" hx-post="/answer" hx-trigger="change"> No</label>` +
		`</div>`
	if got != expect {
		t.Errorf("Radio() = %q, want %q", got, expect)
	}
}

func TestRadioRequiresNameAndValue(t *testing.T) {
	tests := []struct {
		name  string
		props RadioProps
	}{
		{"no name", RadioProps{Value: "a"}},
		{"no value", RadioProps{Name: "n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TestRender(Radio(tt.props))
			if !IsMissingProp(err) {
				t.Errorf("error = %v, want ErrMissingProp", err)
			}
		})
	}
}

func TestFile(t *testing.T) {
	result, err := TestRender(File(FileProps{
		Name:     "resume",
		Accept:   ".pdf",
		Color:    ColorInfo,
		Boxed:    true,
		HasName:  true,
		OnChange: Post("/upload"),
	}))
	if err != nil {
		t.Fatal(err)
	}

	root := result.Root()
	if root.Tag != "div" || root.Class() != "file is-info is-boxed has-name" {
		t.Fatalf("root = <%s class=%q>", root.Tag, root.Class())
	}
	label := root.Elements()[0]
	if label.Tag != "label" || label.Class() != "file-label" {
		t.Fatalf("label = <%s class=%q>", label.Tag, label.Class())
	}
	parts := label.Elements()
	if len(parts) != 3 {
		t.Fatalf("label has %d children, want input, cta and name", len(parts))
	}
	input := parts[0]
	if input.Tag != "input" || input.Attrs["type"] != "file" || input.Attrs["accept"] != ".pdf" || input.Attrs["hx-post"] != "/upload" {
		t.Errorf("input attrs = %v", input.Attrs)
	}
	if !parts[1].HasClass("file-cta") || parts[1].First("i.fas.fa-upload") == nil {
		t.Error("call to action should contain the upload icon")
	}
	if got := parts[1].First("span.file-label").Text(); got != "Choose a file…" {
		t.Errorf("cta label = %q", got)
	}
	if got := parts[2].Text(); got != DefaultFileName {
		t.Errorf("file name = %q, want %q", got, DefaultFileName)
	}
}

func TestFileWithoutName(t *testing.T) {
	result, err := TestRender(File(FileProps{FileName: "ignored.txt"}, Text("Upload")))
	if err != nil {
		t.Fatal(err)
	}
	if result.Count(".file-name") != 0 {
		t.Error("file-name rendered without HasName")
	}
	if got := result.First("span.file-label").Text(); got != "Upload" {
		t.Errorf("cta label = %q", got)
	}
}
