package manifest

import (
	"github.com/go-playground/validator/v10"
)

// validate checks decoded manifests and configs. The "typename" tag accepts names from Types.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("typename", func(fl validator.FieldLevel) bool {
		return HasType(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}
