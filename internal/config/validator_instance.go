package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/sitebrief/internal/catalog"
	"github.com/alexisbeaulieu97/sitebrief/internal/codegen"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			_, err := catalog.ParseCategory(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("target", func(fl validator.FieldLevel) bool {
			_, err := codegen.ParseTarget(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("preset", func(fl validator.FieldLevel) bool {
			_, ok := catalog.LookupPreset(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
