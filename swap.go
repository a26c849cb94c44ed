package bulma

import "slices"

// SwapMode is an htmx hx-swap strategy for how a response replaces the target.
//
// The zero value leaves hx-swap unset, so htmx applies its configured
// default (innerHTML unless changed).
//
// See https://htmx.org/attributes/hx-swap/.
type SwapMode string

const (
	// SwapOuter replaces the whole target element, tag included.
	SwapOuter SwapMode = "outerHTML"

	// SwapInner replaces only the target's contents.
	SwapInner SwapMode = "innerHTML"

	// SwapBeforeEnd appends to the target's contents. Useful for lists.
	SwapBeforeEnd SwapMode = "beforeend"

	// SwapAfterEnd inserts after the target as its next sibling.
	SwapAfterEnd SwapMode = "afterend"

	// SwapBeforeBegin inserts before the target as its previous sibling.
	SwapBeforeBegin SwapMode = "beforebegin"

	// SwapAfterBegin prepends to the target's contents.
	SwapAfterBegin SwapMode = "afterbegin"

	// SwapDelete removes the target and ignores the response body.
	// Dismissible notifications and closable messages use this.
	SwapDelete SwapMode = "delete"

	// SwapNone discards the response.
	SwapNone SwapMode = "none"
)

var swapModes = []SwapMode{
	SwapOuter, SwapInner, SwapBeforeEnd, SwapAfterEnd,
	SwapBeforeBegin, SwapAfterBegin, SwapDelete, SwapNone,
}

// ParseSwapMode parses an hx-swap strategy name such as "outerHTML".
func ParseSwapMode(s string) (SwapMode, error) {
	for _, m := range swapModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", unknownVariant("swap mode", s)
}

// Valid reports whether m is a known strategy.
func (m SwapMode) Valid() bool {
	return slices.Contains(swapModes, m)
}
