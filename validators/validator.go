// Package validators plugs go-playground/validator into Echo's Validator slot.
package validators

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Validator struct {
	validator *validator.Validate
}

// NewValidator creates the request validator installed on the Echo instance.
func NewValidator() *Validator {
	return &Validator{validator: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Instance exposes the underlying validate for form-level validation.
func (v *Validator) Instance() *validator.Validate {
	return v.validator
}
