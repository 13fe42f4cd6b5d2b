package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers every console-specific validation rule
// on the given validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("impact_level", isSeverityLevel); err != nil {
		return err
	}
	if err := v.RegisterValidation("urgency_level", isSeverityLevel); err != nil {
		return err
	}
	if err := v.RegisterValidation("scope_id", isScopeID); err != nil {
		return err
	}
	if err := v.RegisterValidation("permission_code", isPermissionCode); err != nil {
		return err
	}
	return nil
}

func isSeverityLevel(fl validator.FieldLevel) bool {
	v := fl.Field().Int()
	return v >= 1 && v <= 5
}

// A scope is either the literal "global" or a site identifier.
func isScopeID(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "global" {
		return true
	}
	re := regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	return re.MatchString(s)
}

func isPermissionCode(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
	return re.MatchString(fl.Field().String())
}
