package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/invoicerhq/invoicer_backend/internal/dto"
)

// RegisterCustomValidations wires custom binding validations into gin's
// validator engine. Must run once before routes are registered.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("dateonly", validateDateOnly)
}

// validateDateOnly accepts strings in the YYYY-MM-DD wire format.
func validateDateOnly(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := dto.ParseDate(value)
	return err == nil
}
