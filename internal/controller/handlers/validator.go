package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/Freeeeeet/tutoring_api/internal/service"
	"github.com/go-playground/validator/v10"
)

// RequestValidator реализует echo.Validator поверх go-playground/validator
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	validate := validator.New()

	// В ошибках используем имена из json тегов, а не имена полей Go
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate переводит ошибки валидатора в service.ValidationError
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return &service.ValidationError{Reason: service.ReasonMissingFields}
		}
	}
	return &service.ValidationError{Reason: "invalid " + fieldErrs[0].Field()}
}
