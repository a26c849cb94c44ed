package audit

import (
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

var (
	cssComment  = regexp.MustCompile(`(?s)/\*.*?\*/`)
	cssString   = regexp.MustCompile(`"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'`)
	cssClassSel = regexp.MustCompile(`\.(-?[_a-zA-Z][_a-zA-Z0-9-]*)`)
)

// StylesheetClasses returns the class names used in the selectors of a CSS
// stylesheet, sorted and unique. Declarations and at-rule preludes are not
// searched, so values such as "url(a.png)" or ".5em" never count.
func StylesheetClasses(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	css := cssComment.ReplaceAllString(string(data), "")
	css = cssString.ReplaceAllString(css, `""`)

	seen := make(map[string]struct{})
	start := 0
	for i := 0; i < len(css); i++ {
		switch css[i] {
		case '{':
			prelude := strings.TrimSpace(css[start:i])
			if !strings.HasPrefix(prelude, "@") {
				for _, m := range cssClassSel.FindAllStringSubmatch(prelude, -1) {
					seen[m[1]] = struct{}{}
				}
			}
			start = i + 1
		case '}', ';':
			start = i + 1
		}
	}
	return sortedKeys(seen), nil
}

// HTMLClasses returns every class token found on elements of an HTML
// document, sorted and unique.
func HTMLClasses(r io.Reader) ([]string, error) {
	seen := make(map[string]struct{})
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("parse html: %w", err)
			}
			return sortedKeys(seen), nil
		case html.StartTagToken, html.SelfClosingTagToken:
			for _, a := range z.Token().Attr {
				if a.Key != "class" {
					continue
				}
				for _, tok := range strings.Fields(a.Val) {
					seen[tok] = struct{}{}
				}
			}
		}
	}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
