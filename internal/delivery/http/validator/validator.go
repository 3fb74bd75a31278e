// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the echo server.
func New() echo.Validator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
