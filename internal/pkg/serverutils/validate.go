package serverutils

import (
	"fmt"

	"riskiq-be/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation on a request DTO and converts
// failures into a ValidationError with per-field details.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return apperror.NewValidation(err.Error())
		}

		fields := make(map[string]string, len(validationErrors))
		for _, fe := range validationErrors {
			fields[fe.Field()] = fmt.Sprintf("failed on '%s' rule", fe.Tag())
		}
		return apperror.NewValidationFields("request validation failed", fields)
	}
	return nil
}
