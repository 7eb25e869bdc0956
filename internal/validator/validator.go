package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError maps a field name (json tag) to one human-readable message.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("field '%s': %s", field, e.Errors[field]))
	}
	return "Validation failed: " + strings.Join(msgs, "; ")
}

// MessageProvider lets a DTO supply its own messages. Keys are either
// "field.tag" (checked first) or "field".
type MessageProvider interface {
	ValidationMessages() map[string]string
}

// Validator wraps go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with json field names and the custom rules.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomRules(v)

	return &Validator{
		validate: v,
	}
}

// Validate checks a struct. It returns nil, *ValidationError, or a
// non-validation error when i is not a struct.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var custom map[string]string
	if mp, ok := i.(MessageProvider); ok {
		custom = mp.ValidationMessages()
	}

	out := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		field := fieldPath(fe)
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = v.messageFor(fe, field, custom)
	}

	return &ValidationError{Errors: out}
}

// Var validates a single value against a tag string.
func (v *Validator) Var(value interface{}, tag string) bool {
	return v.validate.Var(value, tag) == nil
}

// fieldPath drops the top-level struct name from the namespace so nested
// fields come out as "parent.child".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func (v *Validator) messageFor(fe validator.FieldError, field string, custom map[string]string) string {
	if custom != nil {
		if msg, ok := custom[field+"."+fe.Tag()]; ok {
			return msg
		}
		if msg, ok := custom[field]; ok {
			return msg
		}
	}
	return v.getErrorMessage(fe)
}

func (v *Validator) getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Select at least %s", fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be less than %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters long", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return fmt.Sprintf("Must be a date in the format %s", fe.Param())
	case "phone":
		return "Please enter a valid phone number"
	case "country_code":
		return "Please select a country code"
	case "digits":
		return "Must contain digits only"
	case "integer":
		return "Must be a whole number"
	case "intmin":
		return fmt.Sprintf("Must be %s or more", fe.Param())
	case "intmax":
		return fmt.Sprintf("Must be %s or less", fe.Param())
	case "skills":
		return "Please enter at least one skill"
	case "is-job-category":
		return "Unknown job category"
	case "is-job-type":
		return "Unknown job type"
	case "is-candidate-status":
		return "Unknown candidate status"
	case "is-user-role":
		return "Unknown user role"
	case "is-language":
		return "Unsupported language"
	default:
		return fmt.Sprintf("Invalid value (failed on '%s' tag)", fe.Tag())
	}
}
