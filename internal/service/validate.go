package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/vitoriotavares/beach-tenis-sort/internal/apperr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkInput runs struct-tag validation and converts the first failure into
// a validation error, before anything touches the store.
func checkInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Param() != "" {
			return apperr.Validation("%s fails %s=%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return apperr.Validation("%s fails %s", fe.Field(), fe.Tag())
	}
	return apperr.Validation("invalid input")
}
