package middleware

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance used by the per-route validator
// middlewares. Field names in error maps come from json tags.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct runs struct-tag validation and flattens failures into a
// field -> message map for ValidationErrorResponse.
func ValidateStruct(s interface{}) map[string]string {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}
	for _, fe := range validationErrors {
		errors[fe.Field()] = messageForTag(fe)
	}
	return errors
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required!"
	case "email":
		return "Must be a valid email address!"
	case "min":
		return "Value is below the allowed minimum!"
	case "max":
		return "Value is above the allowed maximum!"
	case "gte":
		return "Value must be at least " + fe.Param() + "!"
	case "lte":
		return "Value must be at most " + fe.Param() + "!"
	default:
		return "Invalid value!"
	}
}
