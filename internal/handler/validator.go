package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/ColonyPlanner_Go/internal/domain"
	"github.com/osse101/ColonyPlanner_Go/internal/toolset"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("unit", validateUnit)
	_ = v.RegisterValidation("tier", validateTier)

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
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by JSON field path
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = ValMsgFormat
		return errs
	}

	for _, e := range validationErrors {
		format, ok := fieldMessages[e.Tag()]
		if !ok {
			errs[fieldPath(e.Namespace())] = ValMsgInvalid
			continue
		}
		errs[fieldPath(e.Namespace())] = format(e.Param())
	}

	return errs
}

// fieldMessages renders a failed tag, given its parameter, as a user-facing
// message
var fieldMessages = map[string]func(param string) string{
	"required":         func(string) string { return ValMsgRequired },
	"required_without": func(p string) string { return fmt.Sprintf(ValMsgEitherFmt, p) },
	"excluded_with":    func(p string) string { return fmt.Sprintf(ValMsgExcludedFmt, p) },
	"gt":               func(p string) string { return fmt.Sprintf(ValMsgGreaterFmt, p) },
	"max":              func(p string) string { return fmt.Sprintf(ValMsgMaxFmt, p) },
	"unit":             func(string) string { return ValMsgOneOf + unitNames() },
	"tier":             func(string) string { return ValMsgOneOf + strings.Join(tierNames(), ", ") },
}

// fieldPath drops the struct name from a validator namespace
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func validateUnit(fl validator.FieldLevel) bool {
	_, err := domain.ParseOutputUnit(fl.Field().String())
	return err == nil
}

func validateTier(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := toolset.ParseTier(value)
	return err == nil
}

func unitNames() string {
	return strings.Join([]string{string(domain.UnitSeconds), string(domain.UnitMinutes), string(domain.UnitGameDays)}, ", ")
}

func tierNames() []string {
	tiers := toolset.Tiers()
	names := make([]string, len(tiers))
	for i, t := range tiers {
		names[i] = t.String()
	}
	return names
}
