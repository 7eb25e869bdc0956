package dto

import (
	"strconv"
	"strings"
)

// InquiryRequest is the employer "post a job" form.
type InquiryRequest struct {
	CompanyName   string `json:"company_name" validate:"required,max=200"`
	ContactPerson string `json:"contact_person" validate:"required,max=100"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Phone         string `json:"phone" validate:"required,max=30"`
	Industry      string `json:"industry" validate:"required"`
	Positions     string `json:"positions" validate:"required,digits"`
	Location      string `json:"location" validate:"required,max=100"`
	Country       string `json:"country" validate:"required,max=100"`
	JobDetails    string `json:"job_details" validate:"max=2000"`
}

func (InquiryRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"company_name.required":   "Company name is required",
		"company_name.max":        "Company name must be less than 200 characters",
		"contact_person.required": "Contact person is required",
		"contact_person.max":      "Name must be less than 100 characters",
		"email.max":               "Email must be less than 255 characters",
		"email":                   "Please enter a valid email address",
		"phone.required":          "Phone number is required",
		"phone.max":               "Phone must be less than 30 characters",
		"industry":                "Please select an industry",
		"positions":               "Invalid position count",
		"location.required":       "Location is required",
		"location.max":            "Location must be less than 100 characters",
		"country.required":        "Country is required",
		"country.max":             "Country must be less than 100 characters",
		"job_details":             "Job details must be less than 2000 characters",
	}
}

// DefaultPositions is used when the position count is missing or zero.
const DefaultPositions = 1

type InquiryInput struct {
	CompanyName   string
	ContactPerson string
	Email         string
	Phone         string
	Industry      string
	Positions     int
	Location      string
	Country       string
	JobDetails    *string
}

func (r InquiryRequest) Normalize() InquiryInput {
	positions, err := strconv.Atoi(r.Positions)
	if err != nil || positions == 0 {
		positions = DefaultPositions
	}

	in := InquiryInput{
		CompanyName:   strings.TrimSpace(r.CompanyName),
		ContactPerson: strings.TrimSpace(r.ContactPerson),
		Email:         strings.TrimSpace(r.Email),
		Phone:         strings.TrimSpace(r.Phone),
		Industry:      r.Industry,
		Positions:     positions,
		Location:      strings.TrimSpace(r.Location),
		Country:       r.Country,
	}
	if r.JobDetails != "" {
		details := r.JobDetails
		in.JobDetails = &details
	}
	return in
}

type InquiryResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
