package dto

import (
	"strconv"
	"strings"
	"time"

	"workbridge_backend/internal/listing"
	"workbridge_backend/internal/models"
)

// JobRequest is the admin job editor form. Optional text fields are sent
// as empty strings and stored as NULL.
type JobRequest struct {
	Title               string `json:"title" validate:"required,notblank,max=200"`
	Company             string `json:"company" validate:"required,notblank,max=200"`
	Location            string `json:"location" validate:"required,notblank,max=100"`
	Region              string `json:"region" validate:"required"`
	Category            string `json:"category" validate:"required,is-job-category"`
	JobType             string `json:"job_type" validate:"required,is-job-type"`
	Salary              string `json:"salary" validate:"max=100"`
	Description         string `json:"description" validate:"max=5000"`
	Requirements        string `json:"requirements" validate:"max=5000"`
	Benefits            string `json:"benefits" validate:"max=5000"`
	ApplicationDeadline string `json:"application_deadline" validate:"omitempty,datetime=2006-01-02"`
	IsActive            string `json:"is_active" validate:"omitempty,oneof=true false"`
}

func (JobRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"title.required":       "Title is required",
		"company.required":     "Company is required",
		"location.required":    "Location is required",
		"title.notblank":       "Title is required",
		"company.notblank":     "Company is required",
		"location.notblank":    "Location is required",
		"region":               "Please select a region",
		"category":             "Please select a category",
		"job_type":             "Please select a job type",
		"application_deadline": "Deadline must be YYYY-MM-DD",
	}
}

type JobInput struct {
	Title               string
	Company             string
	Location            string
	Region              string
	Category            string
	JobType             string
	Salary              *string
	Description         *string
	Requirements        *string
	Benefits            *string
	ApplicationDeadline *time.Time
	IsActive            bool
}

func (r JobRequest) Normalize() JobInput {
	in := JobInput{
		Title:        strings.TrimSpace(r.Title),
		Company:      strings.TrimSpace(r.Company),
		Location:     strings.TrimSpace(r.Location),
		Region:       r.Region,
		Category:     r.Category,
		JobType:      r.JobType,
		Salary:       optional(r.Salary),
		Description:  optional(r.Description),
		Requirements: optional(r.Requirements),
		Benefits:     optional(r.Benefits),
		IsActive:     true,
	}
	if r.IsActive != "" {
		in.IsActive, _ = strconv.ParseBool(r.IsActive)
	}
	if r.ApplicationDeadline != "" {
		if d, err := time.Parse("2006-01-02", r.ApplicationDeadline); err == nil {
			in.ApplicationDeadline = &d
		}
	}
	return in
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// JobListItem is a job card on the public board.
type JobListItem struct {
	models.Job
	PostedLabel string `json:"posted_label"`
}

type JobListResponse struct {
	Jobs  []JobListItem `json:"jobs"`
	Total int           `json:"total"`
}

// JobDetails is the expanded view of a single job.
type JobDetails struct {
	models.Job
	PostedLabel       string   `json:"posted_label"`
	SalaryLabel       string   `json:"salary_label"`
	RequirementItems  []string `json:"requirement_items"`
	BenefitItems      []string `json:"benefit_items"`
	DeadlineFormatted string   `json:"deadline_formatted,omitempty"`
}

// CompetitiveSalary is shown when a job has no salary.
const CompetitiveSalary = "Competitive"

func NewJobListItem(job models.Job, now time.Time) JobListItem {
	return JobListItem{
		Job:         job,
		PostedLabel: listing.TimeAgo(job.CreatedAt, now),
	}
}

func NewJobDetails(job models.Job, now time.Time) JobDetails {
	d := JobDetails{
		Job:              job,
		PostedLabel:      listing.TimeAgo(job.CreatedAt, now),
		SalaryLabel:      CompetitiveSalary,
		RequirementItems: listing.ParseListItems(job.Requirements),
		BenefitItems:     listing.ParseListItems(job.Benefits),
	}
	if job.Salary != nil && *job.Salary != "" {
		d.SalaryLabel = *job.Salary
	}
	if job.ApplicationDeadline != nil {
		d.DeadlineFormatted = listing.FormatDate(time.Time(*job.ApplicationDeadline))
	}
	return d
}
