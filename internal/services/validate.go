package services

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"hrms_backend/internal/models"
)

var empCodePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// validate is shared by all services. Inputs carry their rules as struct
// tags and report failures under their json field names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(models.Date); ok {
			return d.Time
		}
		return nil
	}, models.Date{})
	if err := v.RegisterValidation("empcode", func(fl validator.FieldLevel) bool {
		return empCodePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// checkInput runs struct validation and converts the first failure into a
// client-facing ValidationError.
func checkInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return newValidationError("invalid input")
	}
	return newValidationError(fieldMessage(errs[0]))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "empcode":
		return fmt.Sprintf("%s may only contain letters, numbers, hyphens and underscores", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
