package dto

import (
	"strconv"
	"strings"
	"time"

	"workbridge_backend/internal/listing"
	"workbridge_backend/internal/phone"
)

// GeneralApplication is the job title recorded when a candidate applies
// without picking a job.
const GeneralApplication = "General Application"

// ApplicationRequest is the CV application form (multipart/form-data).
// The CV itself travels as the "cv" file part.
type ApplicationRequest struct {
	FirstName           string   `form:"first_name" json:"first_name" validate:"required,max=100"`
	LastName            string   `form:"last_name" json:"last_name" validate:"required,max=100"`
	Email               string   `form:"email" json:"email" validate:"required,email,max=255"`
	Phone               string   `form:"phone" json:"phone" validate:"required,phone"`
	PhoneCountryCode    string   `form:"phone_country_code" json:"phone_country_code" validate:"required,country_code"`
	Nationality         string   `form:"nationality" json:"nationality" validate:"required"`
	CurrentLocation     string   `form:"current_location" json:"current_location" validate:"required,max=100"`
	ExperienceYears     string   `form:"experience_years" json:"experience_years" validate:"omitempty,integer,intmin=0,intmax=50"`
	Skills              string   `form:"skills" json:"skills" validate:"required,max=500,skills"`
	PreferredIndustries []string `form:"preferred_industries" json:"preferred_industries" validate:"min=1"`
	PreferredCountries  []string `form:"preferred_countries" json:"preferred_countries" validate:"min=1"`
	CoverLetter         string   `form:"cover_letter" json:"cover_letter" validate:"max=2000"`
	DateOfBirth         string   `form:"date_of_birth" json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	JobID               string   `form:"job_id" json:"job_id" validate:"omitempty,uuid"`
	JobTitle            string   `form:"job_title" json:"job_title" validate:"max=200"`
}

func (ApplicationRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"first_name.required":       "First name is required",
		"first_name.max":            "First name must be less than 100 characters",
		"last_name.required":        "Last name is required",
		"last_name.max":             "Last name must be less than 100 characters",
		"email":                     "Invalid email address",
		"phone.required":            "Phone is required",
		"phone":                     "Please enter a valid phone number",
		"phone_country_code":        "Please select a country code",
		"nationality":               "Nationality is required",
		"current_location.required": "Current location is required",
		"current_location.max":      "Current location must be less than 100 characters",
		"experience_years.intmin":   "Experience must be 0 or more",
		"experience_years":          "Invalid experience years",
		"skills.max":                "Skills must be less than 500 characters",
		"skills":                    "Please enter at least one skill",
		"preferred_industries":      "Select at least one industry",
		"preferred_countries":       "Select at least one country",
		"cover_letter":              "Cover letter must be less than 2000 characters",
		"date_of_birth":             "Date of birth must be YYYY-MM-DD",
		"job_id":                    "Unknown job",
	}
}

// CandidateApplication is a validated application ready to be stored.
type CandidateApplication struct {
	FullName            string
	Email               string
	Phone               string
	Nationality         string
	CurrentLocation     string
	ExperienceYears     int
	Skills              []string
	PreferredIndustries []string
	PreferredCountries  []string
	Notes               string
	DateOfBirth         *time.Time
	JobID               *string
	JobTitle            string
}

// Normalize must only be called on a request that passed validation.
func (r ApplicationRequest) Normalize() CandidateApplication {
	years, _ := strconv.Atoi(strings.TrimSpace(r.ExperienceYears))

	app := CandidateApplication{
		FullName:            strings.TrimSpace(r.FirstName + " " + r.LastName),
		Email:               strings.TrimSpace(r.Email),
		Phone:               phone.FormatDisplay(r.PhoneCountryCode, r.Phone),
		Nationality:         r.Nationality,
		CurrentLocation:     strings.TrimSpace(r.CurrentLocation),
		ExperienceYears:     years,
		Skills:              listing.SplitSkills(r.Skills),
		PreferredIndustries: r.PreferredIndustries,
		PreferredCountries:  r.PreferredCountries,
		JobTitle:            strings.TrimSpace(r.JobTitle),
	}
	app.Notes = ApplicationNotes(app.JobTitle, r.CoverLetter)

	if r.DateOfBirth != "" {
		if dob, err := time.Parse("2006-01-02", r.DateOfBirth); err == nil {
			app.DateOfBirth = &dob
		}
	}
	if r.JobID != "" {
		id := r.JobID
		app.JobID = &id
	}
	return app
}

// ApplicationNotes renders the notes stored with a candidate.
func ApplicationNotes(jobTitle, coverLetter string) string {
	if jobTitle == "" {
		jobTitle = GeneralApplication
	}
	notes := "Applied for: " + jobTitle
	if coverLetter != "" {
		notes += "\n\nCover Letter:\n" + coverLetter
	}
	return notes
}

type ApplicationResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	// ResetAfterMS is how long the client keeps the success view up.
	ResetAfterMS int64 `json:"reset_after_ms"`
}
