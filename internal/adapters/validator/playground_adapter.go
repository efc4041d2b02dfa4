package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	validatorPlatform "patientintake/internal/platform/validator"
)

type playgroundValidator struct {
	validate *validator.Validate
}

// NewPlaygroundAdapter reports field errors under their JSON names so the
// HTTP layer can hand them back to clients unchanged.
func NewPlaygroundAdapter() validatorPlatform.Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	return &playgroundValidator{validate: validate}
}

func (v *playgroundValidator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			outErrors := make([]validatorPlatform.FieldError, len(validationErrors))
			for i, fe := range validationErrors {
				outErrors[i] = validatorPlatform.FieldError{
					Field:   fe.Field(),
					Message: getValidationErrorMessage(fe),
				}
			}
			return validatorPlatform.ValidationError{Errors: outErrors}
		}
		return err
	}
	return nil
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(field.Name)
	}
	return name
}

func getValidationErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "This field must be a valid email address"
	case "max":
		if e.Kind() == reflect.Slice || e.Kind() == reflect.Map {
			return fmt.Sprintf("This field must contain at most %s items", e.Param())
		}
		return fmt.Sprintf("This field must be at most %s characters long", e.Param())
	case "min":
		if e.Kind() == reflect.Slice || e.Kind() == reflect.Map {
			return fmt.Sprintf("This field must contain at least %s items", e.Param())
		}
		return fmt.Sprintf("This field must be at least %s characters long", e.Param())
	case "oneof":
		return fmt.Sprintf("This field must be one of: %s", e.Param())
	case "uuid", "uuid4":
		return "This field must be a valid UUID"
	default:
		return fmt.Sprintf("This field failed on the '%s' tag", e.Tag())
	}
}
