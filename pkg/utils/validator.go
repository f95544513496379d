package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs validator/v10 tags on a DTO.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors flattens validator errors into field -> reason pairs
// for the response envelope.
func GetValidationErrors(err error) map[string]string {
	details := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		details["error"] = err.Error()
		return details
	}

	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			details[field] = "is required"
		case "max":
			details[field] = "must be at most " + fieldErr.Param() + " characters"
		case "min":
			details[field] = "must be at least " + fieldErr.Param()
		case "oneof":
			details[field] = "must be one of: " + fieldErr.Param()
		default:
			details[field] = "is invalid"
		}
	}

	return details
}
