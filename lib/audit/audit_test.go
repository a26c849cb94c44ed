package audit

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/bulma"
)

const testCSS = `
/* .commented { color: red } */
.button { background: url(img/a.png); margin: .5em; }
.button.is-primary:hover, .tag > .delete::after { color: red }
[data-label=".quoted"] { content: ".also-quoted" }
@media screen and (min-width: 769px) {
  .columns:not(.is-desktop) { display: flex }
}
@font-face { font-family: x; src: url(font.woff) }
.is-1by1 {}
`

func TestStylesheetClasses(t *testing.T) {
	got, err := StylesheetClasses(strings.NewReader(testCSS))
	require.NoError(t, err)
	assert.Equal(t, []string{"button", "columns", "delete", "is-1by1", "is-desktop", "is-primary", "tag"}, got)
}

func TestHTMLClasses(t *testing.T) {
	var buf bytes.Buffer
	c := bulma.Buttons(bulma.ButtonsProps{},
		bulma.Button(bulma.ButtonProps{Color: bulma.ColorInfo, Rounded: true}, bulma.Text("a")),
		bulma.Button(bulma.ButtonProps{Color: bulma.ColorInfo}, bulma.Text("b")),
	)
	require.NoError(t, c.Render(t.Context(), &buf))

	got, err := HTMLClasses(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"button", "buttons", "is-info", "is-rounded"}, got)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func sourceTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.go"), `package a

import "github.com/pthm/bulma"

func class(on bool, size string) string {
	return bulma.BuildClass([]string{"box"}, bulma.If(on, "is-shadowless"), "is-"+size)
}
`)
	writeFile(t, filepath.Join(root, "a_test.go"), `package a

var _ = bulma.If(true, "from-test")
`)
	writeFile(t, filepath.Join(root, "sub", "b.go"), `package sub

func classes() {
	c := NewClasses("card  card-extra").AddIf(true, "is-")
	c = c.Add("has-border", name)
	_ = c
}
`)
	writeFile(t, filepath.Join(root, ".hidden", "c.go"), `package hidden

var _ = If(true, "hidden-token")
`)
	return root
}

func TestSourceTokens(t *testing.T) {
	root := sourceTree(t)

	lits, err := SourceTokens(root + "/...")
	require.NoError(t, err)
	var tokens []string
	for _, l := range lits {
		tokens = append(tokens, l.Token)
	}
	assert.Equal(t, []string{"is-shadowless", "card", "card-extra", "has-border"}, tokens)
	assert.Equal(t, filepath.Join(root, "a.go"), lits[0].Pos.Filename)
	assert.Equal(t, 6, lits[0].Pos.Line)

	only, err := SourceTokens(filepath.Join(root, "sub"))
	require.NoError(t, err)
	assert.Len(t, only, 3)
}

func TestSourceTokensParseError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "bad.go"), "package bad\nfunc {")
	_, err := SourceTokens(root)
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	root := sourceTree(t)
	rep, err := Run(Options{
		Stylesheet: strings.NewReader(testCSS),
		Vocabulary: []string{"button", "card", "is-primary", "is-shadowless", "is-warning"},
		Packages:   []string{root + "/..."},
		Pages: map[string]io.Reader{
			"home": strings.NewReader(`<div class="tag fas fa-home"><span class="is-primary unknown"></span></div>`),
		},
		Ignore: []string{"fas", "fa-*"},
	})
	require.NoError(t, err)
	assert.False(t, rep.OK())
	assert.Equal(t, 7, rep.Defined)

	missing := map[string]string{}
	for _, f := range rep.Missing {
		missing[f.Token] = f.Where
	}
	assert.Equal(t, "vocabulary", missing["card"])
	assert.Equal(t, "vocabulary", missing["is-shadowless"])
	assert.Equal(t, "vocabulary", missing["is-warning"])
	assert.Equal(t, "page home", missing["unknown"])
	assert.Contains(t, missing["has-border"], "b.go:5")
	assert.NotContains(t, missing, "button")
	assert.NotContains(t, missing, "fas")

	var unlisted []string
	for _, f := range rep.Unlisted {
		unlisted = append(unlisted, f.Token)
	}
	assert.Equal(t, []string{"card-extra", "has-border"}, unlisted)
	assert.Equal(t, 9, rep.Checked)
}

func TestRunVocabularyAgainstMatchingStylesheet(t *testing.T) {
	var css strings.Builder
	for _, tok := range bulma.Vocabulary() {
		css.WriteString("." + tok + " { }\n")
	}
	rep, err := Run(Options{Stylesheet: strings.NewReader(css.String())})
	require.NoError(t, err)
	assert.True(t, rep.OK(), "%+v", rep.Missing)
	assert.Equal(t, len(bulma.Vocabulary()), rep.Checked)
}

func TestRunRequiresStylesheet(t *testing.T) {
	_, err := Run(Options{})
	assert.Error(t, err)
}

func TestReportWrite(t *testing.T) {
	rep := &Report{
		Defined: 3,
		Checked: 4,
		Missing: []Finding{{Token: "is-gone", Where: "vocabulary"}},
	}
	var buf bytes.Buffer
	require.NoError(t, rep.Write(&buf))
	out := buf.String()
	assert.Contains(t, out, "Bulma class audit")
	assert.Contains(t, out, "3 classes defined, 4 tokens checked")
	assert.Contains(t, out, "Missing from stylesheet (1)")
	assert.Contains(t, out, "  is-gone  vocabulary")
	assert.NotContains(t, out, "All tokens defined")

	buf.Reset()
	require.NoError(t, (&Report{Defined: 1, Checked: 1}).Write(&buf))
	assert.Contains(t, buf.String(), "All tokens defined")
}

func TestWriteVocabulary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVocabulary(&buf, []string{"box", "button", "card", "tag", "title"}, 20))
	assert.Equal(t, "box     button\ncard    tag\ntitle\n", buf.String())
}
