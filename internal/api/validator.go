package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	app_errors "agribrain/backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	// validate holds the single instance of the validator.
	validate *validator.Validate
	// once ensures that the validator is initialized only one time.
	once sync.Once
)

// getInstance returns the validator singleton. Field errors are reported with
// their JSON names so messages match what the client sent.
func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// validateRequest checks a payload against its `validate` tags and returns a
// wrapped app_errors.ErrValidation describing every failing field.
func validateRequest(payload interface{}) error {
	err := getInstance().Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: an unexpected error occurred during validation: %s", app_errors.ErrValidation, err.Error())
	}

	var missing, invalid []string
	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == "required" {
			missing = append(missing, fieldErr.Field())
			continue
		}
		invalid = append(invalid, fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag()))
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("All fields are required (missing: %s)", strings.Join(missing, ", ")))
	}
	parts = append(parts, invalid...)
	return fmt.Errorf("%w: %s", app_errors.ErrValidation, strings.Join(parts, "; "))
}
