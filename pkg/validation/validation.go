// Package validation wraps go-playground/validator with the rules course and
// post inputs share.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"travel-journal/pkg/apperr"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format of course dates.
const DateLayout = "2006-01-02"

// TransportModes are the accepted waypoint transport values.
var TransportModes = []string{"walk", "car", "public", "taxi"}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("notblank", validateNotBlank)
	_ = v.RegisterValidation("ymd", validateDate)
	_ = v.RegisterValidation("transport", validateTransport)

	return &Validator{validate: v}
}

// Struct validates i and converts the first failing field into a
// ValidationFailure.
func (v *Validator) Struct(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperr.NewValidation(message(fieldErrs[0]))
	}
	return apperr.NewValidation(err.Error())
}

// Var validates a single value against tag.
func (v *Validator) Var(field interface{}, tag, name string) error {
	err := v.validate.Var(field, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperr.NewValidation(strings.Replace(message(fe), "The  field", "The "+name+" field", 1))
	}
	return apperr.NewValidation(err.Error())
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("The %s field is required", field)
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("The %s field must not exceed %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s", field, fe.Param())
	case "ymd":
		return fmt.Sprintf("The %s field must be a date in YYYY-MM-DD format", field)
	case "transport":
		return fmt.Sprintf("The %s field must be one of: %s", field, strings.Join(TransportModes, " "))
	default:
		return fmt.Sprintf("The %s field is invalid", field)
	}
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

func validateTransport(fl validator.FieldLevel) bool {
	return IsTransportMode(fl.Field().String())
}

func IsTransportMode(s string) bool {
	for _, m := range TransportModes {
		if s == m {
			return true
		}
	}
	return false
}
