package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type experienceForm struct {
	Experience string `json:"experience_years" validate:"required,integer,intmin=0,intmax=50"`
}

func (experienceForm) ValidationMessages() map[string]string {
	return map[string]string{
		"experience_years.required": "Experience is required",
		"experience_years":          "Invalid experience years",
		"experience_years.intmin":   "Experience must be 0 or more",
	}
}

type contactForm struct {
	Phone       string `json:"phone" validate:"required,phone"`
	CountryCode string `json:"country_code" validate:"required,country_code"`
	Skills      string `json:"skills" validate:"required,skills"`
	Category    string `json:"category" validate:"omitempty,is-job-category"`
	Language    string `json:"language" validate:"omitempty,is-language"`
}

func TestValidate_ExperienceBounds(t *testing.T) {
	v := New()

	tests := []struct {
		value   string
		wantErr string
	}{
		{"0", ""},
		{"50", ""},
		{" 7 ", ""},
		{"-1", "Experience must be 0 or more"},
		{"51", "Invalid experience years"},
		{"abc", "Invalid experience years"},
		{"", "Experience is required"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := v.Validate(experienceForm{Experience: tt.value})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Errors["experience_years"])
		})
	}
}

func TestValidate_CustomRules(t *testing.T) {
	v := New()

	ok := contactForm{
		Phone:       "555 010 0123",
		CountryCode: "US",
		Skills:      "welding, forklift",
		Category:    "Construction",
		Language:    "ro",
	}
	assert.NoError(t, v.Validate(ok))

	bad := contactForm{
		Phone:       "12-34",
		CountryCode: "XX",
		Skills:      " , ,",
		Category:    "Astronaut",
		Language:    "de",
	}
	err := v.Validate(bad)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	assert.Equal(t, "Please enter a valid phone number", verr.Errors["phone"])
	assert.Equal(t, "Please select a country code", verr.Errors["country_code"])
	assert.Equal(t, "Please enter at least one skill", verr.Errors["skills"])
	assert.Equal(t, "Unknown job category", verr.Errors["category"])
	assert.Equal(t, "Unsupported language", verr.Errors["language"])
}

func TestValidationError_MessageIsStable(t *testing.T) {
	err := &ValidationError{Errors: map[string]string{
		"b": "second",
		"a": "first",
	}}
	assert.Equal(t, "Validation failed: field 'a': first; field 'b': second", err.Error())
}

func TestVar(t *testing.T) {
	v := New()
	assert.True(t, v.Var("42", "integer"))
	assert.False(t, v.Var("4.2", "integer"))
	assert.True(t, v.Var("PL", "country_code"))
}
