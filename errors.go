package bulma

import (
	"errors"
	"fmt"
)

// Sentinel errors for style and component operations.
var (
	ErrUnknownVariant = errors.New("bulma: unknown style variant")
	ErrMissingProp    = errors.New("bulma: required property missing")
)

// IsUnknownVariant checks if err is an unknown-variant parse error.
func IsUnknownVariant(err error) bool {
	return errors.Is(err, ErrUnknownVariant)
}

// IsMissingProp checks if err reports a missing required property.
func IsMissingProp(err error) bool {
	return errors.Is(err, ErrMissingProp)
}

func unknownVariant(kind, value string) error {
	return fmt.Errorf("%w: %s %q", ErrUnknownVariant, kind, value)
}

func missingProp(component, prop string) error {
	return fmt.Errorf("%w: %s.%s", ErrMissingProp, component, prop)
}
