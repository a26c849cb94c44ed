package bulma

import "strings"

// BuildClass composes a class attribute value from base tokens followed by
// optional tokens.
//
// Empty tokens in either list are dropped and the survivors are joined with a
// single space, so the result never has leading, trailing or doubled spaces.
// Order is preserved: base tokens first, then optional tokens as given.
//
//	bulma.BuildClass([]string{"button"}, "is-primary", "", "is-large")
//	// "button is-primary is-large"
//
// An absent optional is represented by the empty string. Use If for
// boolean-gated tokens and the enum Class methods for style tokens; both
// return "" when they contribute nothing.
func BuildClass(base []string, optional ...string) string {
	return NewClasses(base...).Add(optional...).String()
}

// If returns token when cond is true and "" otherwise.
//
//	bulma.BuildClass([]string{"tag"}, bulma.If(rounded, "is-rounded"))
func If(cond bool, token string) string {
	if cond {
		return token
	}
	return ""
}

// Classes accumulates class tokens. The zero value is ready to use.
//
// Classes is a value type: every method returns an updated copy, matching
// the rest of the builder APIs in this package.
type Classes struct {
	tokens []string
}

// NewClasses starts a class list with the given base tokens.
func NewClasses(base ...string) Classes {
	return Classes{}.Add(base...)
}

// Add appends the non-empty tokens.
func (c Classes) Add(tokens ...string) Classes {
	out := make([]string, len(c.tokens), len(c.tokens)+len(tokens))
	copy(out, c.tokens)
	for _, t := range tokens {
		if t != "" {
			out = append(out, t)
		}
	}
	c.tokens = out
	return c
}

// AddIf appends token when cond is true.
func (c Classes) AddIf(cond bool, token string) Classes {
	return c.Add(If(cond, token))
}

// Len reports the number of tokens collected so far.
func (c Classes) Len() int {
	return len(c.tokens)
}

// String joins the tokens with single spaces.
func (c Classes) String() string {
	return strings.Join(c.tokens, " ")
}
