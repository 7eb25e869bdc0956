package forms

import (
	"errors"
	"time"

	"workbridge_backend/internal/models"
	"workbridge_backend/internal/phone"
	"workbridge_backend/internal/services/dto"
	"workbridge_backend/internal/validator"
)

// ApplicationResetDelay is how long the application form shows its success
// state before clearing.
const ApplicationResetDelay = 2000 * time.Millisecond

// CVField is the field an application's CV error is reported under.
const CVField = "cv"

// normalizer is a validated request that knows its stored shape.
type normalizer[T any] interface {
	Normalize() T
}

// validateWith runs v over req and normalizes it when valid.
func validateWith[R normalizer[T], T any](v *validator.Validator, req R) (T, map[string]string) {
	var zero T
	if err := v.Validate(req); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			return zero, verr.Errors
		}
		return zero, map[string]string{"_": err.Error()}
	}
	return req.Normalize(), nil
}

func NewApplicationForm(v *validator.Validator, opts ...Option) *Controller[dto.CandidateApplication] {
	base := []Option{
		WithDefaults(map[string]string{
			"phone_country_code": phone.DefaultCountryCode,
			"experience_years":   "0",
		}),
		WithLists("preferred_industries", "preferred_countries"),
		WithSanitizer("phone", phone.Sanitize),
		WithAttachment(CVPolicy, CVField),
		WithResetDelay(ApplicationResetDelay),
		WithSuccessNotice("Application Submitted!", "Thank you for applying. We'll be in touch soon."),
	}
	return NewController(func(s Snapshot) (dto.CandidateApplication, map[string]string) {
		req := dto.ApplicationRequest{
			FirstName:           s.Get("first_name"),
			LastName:            s.Get("last_name"),
			Email:               s.Get("email"),
			Phone:               s.Get("phone"),
			PhoneCountryCode:    s.Get("phone_country_code"),
			Nationality:         s.Get("nationality"),
			CurrentLocation:     s.Get("current_location"),
			ExperienceYears:     s.Get("experience_years"),
			Skills:              s.Get("skills"),
			PreferredIndustries: s.List("preferred_industries"),
			PreferredCountries:  s.List("preferred_countries"),
			CoverLetter:         s.Get("cover_letter"),
			DateOfBirth:         s.Get("date_of_birth"),
			JobID:               s.Get("job_id"),
			JobTitle:            s.Get("job_title"),
		}
		return validateWith[dto.ApplicationRequest, dto.CandidateApplication](v, req)
	}, append(base, opts...)...)
}

func NewInquiryForm(v *validator.Validator, opts ...Option) *Controller[dto.InquiryInput] {
	base := []Option{
		WithDefaults(map[string]string{"positions": "1"}),
		WithSuccessNotice("Request Submitted!", "Our recruitment team will contact you within 24 hours."),
	}
	return NewController(func(s Snapshot) (dto.InquiryInput, map[string]string) {
		req := dto.InquiryRequest{
			CompanyName:   s.Get("company_name"),
			ContactPerson: s.Get("contact_person"),
			Email:         s.Get("email"),
			Phone:         s.Get("phone"),
			Industry:      s.Get("industry"),
			Positions:     s.Get("positions"),
			Location:      s.Get("location"),
			Country:       s.Get("country"),
			JobDetails:    s.Get("job_details"),
		}
		return validateWith[dto.InquiryRequest, dto.InquiryInput](v, req)
	}, append(base, opts...)...)
}

func NewLoginForm(v *validator.Validator, opts ...Option) *Controller[dto.Credentials] {
	return NewController(func(s Snapshot) (dto.Credentials, map[string]string) {
		req := dto.LoginRequest{Email: s.Get("email"), Password: s.Get("password")}
		return validateWith[dto.LoginRequest, dto.Credentials](v, req)
	}, append([]Option{WithFailureTitle("Login Failed")}, opts...)...)
}

func NewContactForm(v *validator.Validator, opts ...Option) *Controller[dto.ContactMessage] {
	base := []Option{
		WithSuccessNotice("Message Sent!", "Thank you for reaching out. We'll get back to you soon."),
	}
	return NewController(func(s Snapshot) (dto.ContactMessage, map[string]string) {
		req := dto.ContactRequest{
			Name:    s.Get("name"),
			Email:   s.Get("email"),
			Phone:   s.Get("phone"),
			Subject: s.Get("subject"),
			Message: s.Get("message"),
		}
		return validateWith[dto.ContactRequest, dto.ContactMessage](v, req)
	}, append(base, opts...)...)
}

func NewJobEditorForm(v *validator.Validator, opts ...Option) *Controller[dto.JobInput] {
	base := []Option{
		WithDefaults(map[string]string{
			"job_type":  models.JobTypeFullTime,
			"is_active": "true",
		}),
		WithFailureTitle("Error"),
	}
	return NewController(func(s Snapshot) (dto.JobInput, map[string]string) {
		req := dto.JobRequest{
			Title:               s.Get("title"),
			Company:             s.Get("company"),
			Location:            s.Get("location"),
			Region:              s.Get("region"),
			Category:            s.Get("category"),
			JobType:             s.Get("job_type"),
			Salary:              s.Get("salary"),
			Description:         s.Get("description"),
			Requirements:        s.Get("requirements"),
			Benefits:            s.Get("benefits"),
			ApplicationDeadline: s.Get("application_deadline"),
			IsActive:            s.Get("is_active"),
		}
		return validateWith[dto.JobRequest, dto.JobInput](v, req)
	}, append(base, opts...)...)
}
