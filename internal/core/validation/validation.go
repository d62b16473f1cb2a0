// Package validation runs struct-tag validation and reports failures as apperr validation errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"courier-billing/internal/core/apperr"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate

	mailboxPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// Get returns the shared validator. Field names in messages follow json tags.
func Get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		// mailbox accepts anything shaped like local@domain.tld.
		_ = v.RegisterValidation("mailbox", func(fl validator.FieldLevel) bool {
			return mailboxPattern.MatchString(fl.Field().String())
		})
		instance = v
	})
	return instance
}

// Struct validates s. The first failing field is reported as a validation error.
func Struct(s any) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperr.Validation(describe(fieldErrs[0]))
	}
	return apperr.Validation(err.Error())
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es requerido", field)
	case "email", "mailbox":
		return "Por favor ingrese un email válido"
	case "oneof":
		return fmt.Sprintf("El campo %s debe ser uno de: %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("El campo %s debe ser mayor que %s", field, fe.Param())
	case "gte", "min":
		return fmt.Sprintf("El campo %s debe ser mayor o igual a %s", field, fe.Param())
	case "lte", "max":
		return fmt.Sprintf("El campo %s debe ser menor o igual a %s", field, fe.Param())
	case "uuid", "uuid4":
		return fmt.Sprintf("El campo %s no es un identificador válido", field)
	default:
		return fmt.Sprintf("El campo %s no es válido", field)
	}
}
