package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/pthm/bulma"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator with the bulma_* rules registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("bulma_theme", func(fl validator.FieldLevel) bool {
			_, err := bulma.ParseTheme(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("bulma_color", func(fl validator.FieldLevel) bool {
			_, err := bulma.ParseColor(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks c. Theme and accent failures wrap bulma.ErrUnknownVariant.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "bulma_theme":
			_, perr := bulma.ParseTheme(c.Theme)
			return fmt.Errorf("config: %s: %w", fe.Namespace(), perr)
		case "bulma_color":
			_, perr := bulma.ParseColor(c.Accent)
			return fmt.Errorf("config: %s: %w", fe.Namespace(), perr)
		}
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Namespace() + " is required"
	case "min", "max":
		return fmt.Sprintf("%s must have %s length %s", fe.Namespace(), fe.Tag(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Namespace(), fe.Param())
	case "hostname_port":
		return fe.Namespace() + " must be host:port"
	default:
		return fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag())
	}
}
