package forms

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports field names from their form tag so validation messages
// key the same way the templates and the backend's 400 bodies do.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(field.Name)
		}
		return name
	})
	return v
}

// FieldErrors validates s against its validate tags and returns friendly
// per-field messages keyed by form field name. A nil map means valid.
func FieldErrors(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fields := map[string]string{}
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			name := fieldError.Field()
			fields[name] = fieldMessage(name, fieldError)
		}
	}
	if len(fields) == 0 {
		fields["__all__"] = "invalid input"
	}
	return fields
}

func fieldMessage(name string, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", name)
	case "gt", "gte":
		return fmt.Sprintf("%s must be positive", name)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, e.Param())
	case "datetime":
		return fmt.Sprintf("%s must match %s", name, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}
