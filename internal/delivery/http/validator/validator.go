// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	domainerrors "medlink/internal/domain/errors"
	"medlink/internal/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the Echo validator used for form-bound input DTOs. Field names
// in error messages come from the form tag, so the flash message names the
// field the user actually submitted.
func New() echo.Validator {
	v := playground.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	return &echoValidator{validate: v}
}

// Validate checks struct tags and reports the first offending field.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return domainerrors.NewValidationError(fieldErrs[0].Field())
	}

	return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
}
