package dto

import (
	"workbridge_backend/internal/listing"
	"workbridge_backend/internal/models"
	"workbridge_backend/internal/phone"
)

type SalaryRange struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

var salaryLabels = map[string]string{
	listing.Salary0To1000:    "$0 - $1,000",
	listing.Salary1000To2000: "$1,000 - $2,000",
	listing.Salary2000To3000: "$2,000 - $3,000",
	listing.Salary3000To5000: "$3,000 - $5,000",
	listing.Salary5000Plus:   "$5,000+",
}

// CatalogResponse lists every fixed choice the public and admin forms offer.
type CatalogResponse struct {
	Categories            []string                 `json:"categories"`
	JobTypes              []string                 `json:"job_types"`
	Regions               []string                 `json:"regions"`
	ApplicationIndustries []string                 `json:"application_industries"`
	InquiryIndustries     []string                 `json:"inquiry_industries"`
	CandidateStatuses     []models.CandidateStatus `json:"candidate_statuses"`
	SalaryRanges          []SalaryRange            `json:"salary_ranges"`
	PhoneCountries        []phone.Country          `json:"phone_countries"`
}

func NewCatalogResponse() CatalogResponse {
	ranges := make([]SalaryRange, 0, len(listing.SalaryRanges))
	for _, key := range listing.SalaryRanges {
		ranges = append(ranges, SalaryRange{Key: key, Label: salaryLabels[key]})
	}

	return CatalogResponse{
		Categories:            models.JobCategories,
		JobTypes:              models.JobTypes,
		Regions:               models.Regions,
		ApplicationIndustries: models.ApplicationIndustries,
		InquiryIndustries:     models.InquiryIndustries,
		CandidateStatuses:     models.CandidateStatuses,
		SalaryRanges:          ranges,
		PhoneCountries:        phone.Countries(),
	}
}
