package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator adapts go-playground/validator to echo's Validator interface and
// turns rule violations into 400 responses with per-field detail.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}

	detail := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		detail[fe.Field()] = "failed on '" + fe.Tag() + "'"
	}

	return echo.NewHTTPError(http.StatusBadRequest, detail)
}
