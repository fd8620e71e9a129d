package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/DailyPoll_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("option", validateOption)
	_ = v.RegisterValidation("date", validateDate)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by the lowercased field name
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = ErrMsgRequestFormat
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = ErrMsgFieldRequired
		case "max":
			errs[field] = fmt.Sprintf(ErrMsgFieldMax, e.Param())
		case "min":
			errs[field] = fmt.Sprintf(ErrMsgFieldMin, e.Param())
		case "uuid":
			errs[field] = ErrMsgFieldUUID
		case "option":
			errs[field] = ErrMsgFieldOption
		case "date":
			errs[field] = ErrMsgFieldDate
		case "excludesall":
			errs[field] = ErrMsgFieldInvalidChar
		default:
			errs[field] = ErrMsgFieldInvalid
		}
	}

	return errs
}

// validateOption accepts the spellings domain.ParseOption understands
func validateOption(fl validator.FieldLevel) bool {
	_, err := domain.ParseOption(fl.Field().String())
	return err == nil
}

// validateDate allows empty values; pair with required when the date is mandatory
func validateDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := domain.ParseDate(s)
	return err == nil
}
