package validator

import (
	"log"
	"strconv"
	"strings"

	"workbridge_backend/internal/i18n"
	"workbridge_backend/internal/listing"
	"workbridge_backend/internal/models"
	"workbridge_backend/internal/phone"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// registerCustomRules registers every custom tag on v.
// Empty values pass all of them; combine with 'required' where needed.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// contact fields
	mustRegister("phone", validatePhone)
	mustRegister("country_code", validateCountryCode)

	// numeric text fields, as posted by html forms
	mustRegister("digits", validateDigits)
	mustRegister("integer", validateInteger)
	mustRegister("intmin", validateIntMin)
	mustRegister("intmax", validateIntMax)

	mustRegister("skills", validateSkills)

	// rejects whitespace-only text that 'required' lets through
	mustRegister("notblank", validators.NotBlank)

	// catalog and enum values
	mustRegister("is-job-category", validateJobCategory)
	mustRegister("is-job-type", validateJobType)
	mustRegister("is-candidate-status", validateCandidateStatus)
	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-language", validateLanguage)
}

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return phone.ValidateNumber(value)
}

func validateCountryCode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := phone.Lookup(value)
	return ok
}

func validateDigits(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validateInteger(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true
	}
	_, err := strconv.Atoi(value)
	return err == nil
}

// validateIntMin and validateIntMax compare a numeric string against the tag
// parameter. Non-numeric input passes here and is left to 'integer'.
func validateIntMin(fl validator.FieldLevel) bool {
	n, limit, ok := intAndParam(fl)
	if !ok {
		return true
	}
	return n >= limit
}

func validateIntMax(fl validator.FieldLevel) bool {
	n, limit, ok := intAndParam(fl)
	if !ok {
		return true
	}
	return n <= limit
}

func intAndParam(fl validator.FieldLevel) (int, int, bool) {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return 0, 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, 0, false
	}
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		log.Printf("validator: bad integer parameter %q on field %s", fl.Param(), fl.FieldName())
		return 0, 0, false
	}
	return n, limit, true
}

// validateSkills requires at least one non-blank item in a comma separated list.
func validateSkills(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return len(listing.SplitSkills(value)) > 0
}

func validateJobCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsJobCategory(value)
}

func validateJobType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsJobType(value)
}

func validateCandidateStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.CandidateStatus(value).Valid()
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.UserRole(value).Valid()
}

func validateLanguage(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return i18n.IsSupported(value)
}
