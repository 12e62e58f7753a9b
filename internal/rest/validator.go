package rest

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator and plugs into echo.Echo.Validator.
type Validator struct {
	validator *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Use JSON or query field names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	// email_or_empty accepts "" so optional emails can be cleared
	_ = validate.RegisterValidation("email_or_empty", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || validate.Var(s, "email") == nil
	})

	return &Validator{
		validator: validate,
	}
}

// Validate validates a struct and returns a *ValidationError on failure.
func (v *Validator) Validate(i interface{}) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return NewValidationError(errs)
	}

	return err
}

// ValidationError maps request fields to readable problems.
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, len(fields))
	for i, field := range fields {
		messages[i] = e.Errors[field]
	}

	return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
}

func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	result := make(map[string]string, len(errs))

	for _, err := range errs {
		field := err.Field()

		switch err.Tag() {
		case "required":
			result[field] = fmt.Sprintf("%s is required", field)
		case "email", "email_or_empty":
			result[field] = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			if err.Kind() == reflect.String {
				result[field] = fmt.Sprintf("%s must be at least %s characters long", field, err.Param())
			} else {
				result[field] = fmt.Sprintf("%s must not be less than %s", field, err.Param())
			}
		case "max":
			if err.Kind() == reflect.String {
				result[field] = fmt.Sprintf("%s must be at most %s characters long", field, err.Param())
			} else {
				result[field] = fmt.Sprintf("%s must not be greater than %s", field, err.Param())
			}
		case "gt":
			result[field] = fmt.Sprintf("%s must be greater than %s", field, err.Param())
		case "oneof":
			result[field] = fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(err.Param(), " ", ", "))
		case "hexcolor":
			result[field] = fmt.Sprintf("%s must be a hex color", field)
		case "url":
			result[field] = fmt.Sprintf("%s must be a valid URL", field)
		default:
			result[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return &ValidationError{Errors: result}
}
