package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrValidation wraps every configuration validation failure.
var ErrValidation = errors.New("invalid configuration")

// Validate checks field constraints declared in the struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("%w: %s failed on %q (%d problem(s))", ErrValidation, first.Namespace(), first.Tag(), len(verrs))
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
