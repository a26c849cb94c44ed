// Package audit checks the class tokens the components emit against a
// Bulma stylesheet.
//
// A token the library emits that the stylesheet does not define renders
// without error and silently has no effect. The audit finds those tokens
// in three places: the library's vocabulary, class literals in Go source
// and the classes of rendered HTML pages.
package audit

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pthm/bulma"
)

// Options configures Run.
type Options struct {
	// Stylesheet is the CSS the tokens are checked against. Required.
	Stylesheet io.Reader
	// Vocabulary defaults to bulma.Vocabulary().
	Vocabulary []string
	// Packages are Go package patterns whose class literals are checked.
	Packages []string
	// Pages are rendered HTML documents whose classes are checked.
	Pages map[string]io.Reader
	// Ignore lists tokens that come from other stylesheets, such as icon
	// fonts. An entry ending in "*" ignores every token with that prefix.
	Ignore []string
}

func (o Options) ignored(tok string) bool {
	for _, ig := range o.Ignore {
		if prefix, ok := strings.CutSuffix(ig, "*"); ok && strings.HasPrefix(tok, prefix) {
			return true
		}
		if ig == tok {
			return true
		}
	}
	return false
}

// Finding is one class token missing from the stylesheet.
type Finding struct {
	Token string
	// Where is "vocabulary", a source position or "page <name>".
	Where string
}

// Report is the outcome of Run.
type Report struct {
	// Defined is the number of classes the stylesheet defines.
	Defined int
	// Checked is the number of distinct tokens checked.
	Checked int
	// Missing lists tokens the stylesheet does not define.
	Missing []Finding
	// Unlisted lists source literals absent from the vocabulary. They are
	// classes the library emits without declaring them.
	Unlisted []Finding
}

// OK reports whether nothing is missing or unlisted.
func (r *Report) OK() bool {
	return len(r.Missing) == 0 && len(r.Unlisted) == 0
}

// Run performs the audit.
func Run(opts Options) (*Report, error) {
	if opts.Stylesheet == nil {
		return nil, fmt.Errorf("audit: no stylesheet")
	}
	defined, err := StylesheetClasses(opts.Stylesheet)
	if err != nil {
		return nil, err
	}
	vocab := opts.Vocabulary
	if vocab == nil {
		vocab = bulma.Vocabulary()
	}

	rep := &Report{Defined: len(defined)}
	checked := make(map[string]struct{})
	check := func(tok, where string) {
		if opts.ignored(tok) {
			return
		}
		checked[tok] = struct{}{}
		if _, found := slices.BinarySearch(defined, tok); !found {
			rep.Missing = append(rep.Missing, Finding{Token: tok, Where: where})
		}
	}

	for _, tok := range vocab {
		check(tok, "vocabulary")
	}

	if len(opts.Packages) > 0 {
		lits, err := SourceTokens(opts.Packages...)
		if err != nil {
			return nil, err
		}
		for _, lit := range lits {
			if opts.ignored(lit.Token) {
				continue
			}
			if !slices.Contains(vocab, lit.Token) {
				rep.Unlisted = append(rep.Unlisted, Finding{Token: lit.Token, Where: lit.Pos.String()})
			}
			if _, done := checked[lit.Token]; !done {
				check(lit.Token, lit.Pos.String())
			}
		}
	}

	names := make([]string, 0, len(opts.Pages))
	for name := range opts.Pages {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		classes, err := HTMLClasses(opts.Pages[name])
		if err != nil {
			return nil, fmt.Errorf("page %s: %w", name, err)
		}
		for _, tok := range classes {
			if _, done := checked[tok]; !done {
				check(tok, "page "+name)
			}
		}
	}

	rep.Checked = len(checked)
	return rep, nil
}

// Write prints the report. Colors are used only when w is a terminal.
func (r *Report) Write(w io.Writer) error {
	re := lipgloss.NewRenderer(w)
	title := re.NewStyle().Bold(true)
	good := re.NewStyle().Foreground(lipgloss.Color("10"))
	bad := re.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dim := re.NewStyle().Faint(true)
	token := re.NewStyle().Width(widest(r.Missing, r.Unlisted) + 2)

	var b strings.Builder
	fmt.Fprintln(&b, title.Render("Bulma class audit"))
	fmt.Fprintf(&b, "%d classes defined, %d tokens checked\n", r.Defined, r.Checked)
	section := func(name string, findings []Finding) {
		if len(findings) == 0 {
			return
		}
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, bad.Render(fmt.Sprintf("%s (%d)", name, len(findings))))
		for _, f := range findings {
			fmt.Fprintf(&b, "  %s%s\n", token.Render(f.Token), dim.Render(f.Where))
		}
	}
	section("Missing from stylesheet", r.Missing)
	section("Not in vocabulary", r.Unlisted)
	if r.OK() {
		fmt.Fprintln(&b, good.Render("All tokens defined"))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func widest(lists ...[]Finding) int {
	n := 0
	for _, l := range lists {
		for _, f := range l {
			n = max(n, len(f.Token))
		}
	}
	return n
}

// WriteVocabulary prints tokens in columns sized for a terminal of width.
func WriteVocabulary(w io.Writer, tokens []string, width int) error {
	if width <= 0 {
		width = 80
	}
	col := 0
	for _, t := range tokens {
		col = max(col, len(t))
	}
	col += 2
	per := max(width/col, 1)

	re := lipgloss.NewRenderer(w)
	cell := re.NewStyle().Width(col)
	var b strings.Builder
	for i := 0; i < len(tokens); i += per {
		row := make([]string, 0, per)
		for _, t := range tokens[i:min(i+per, len(tokens))] {
			row = append(row, cell.Render(t))
		}
		b.WriteString(strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, row...), " "))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
