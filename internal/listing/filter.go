// Package listing filters and formats job, inquiry and candidate lists.
// Every function here is pure and preserves the input order.
package listing

import (
	"sort"
	"strings"

	"workbridge_backend/internal/models"
)

// All is the sentinel that disables a select filter.
const All = "all"

// JobFilter is the public job board filter. Empty fields match everything.
type JobFilter struct {
	Search   string `form:"search" json:"search"`
	Category string `form:"category" json:"category"`
	Region   string `form:"region" json:"region"`
	Salary   string `form:"salary" json:"salary"`
}

// FilterJobs returns the jobs matching every predicate of f.
func FilterJobs(jobs []models.Job, f JobFilter) []models.Job {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if search != "" &&
			!containsFold(job.Title, search) &&
			!containsFold(job.Company, search) {
			continue
		}
		if !selectMatchFold(f.Category, job.Category) {
			continue
		}
		if !selectMatchFold(f.Region, job.Region) {
			continue
		}
		if !MatchesSalaryRange(job.Salary, f.Salary) {
			continue
		}
		out = append(out, job)
	}
	return out
}

// AdminJobFilter narrows the admin job table.
type AdminJobFilter struct {
	Search   string `form:"job_search" json:"search"`
	Category string `form:"job_category" json:"category"`
	Status   string `form:"job_status" json:"status"`
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

func FilterAdminJobs(jobs []models.Job, f AdminJobFilter) []models.Job {
	search := strings.ToLower(f.Search)

	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if search != "" &&
			!containsFold(job.Title, search) &&
			!containsFold(job.Company, search) &&
			!containsFold(job.Location, search) {
			continue
		}
		if !selectMatch(f.Category, job.Category) {
			continue
		}
		switch f.Status {
		case StatusActive:
			if !job.IsActive {
				continue
			}
		case StatusInactive:
			if job.IsActive {
				continue
			}
		}
		out = append(out, job)
	}
	return out
}

type InquiryFilter struct {
	Search   string `form:"inquiry_search" json:"search"`
	Industry string `form:"inquiry_industry" json:"industry"`
}

func FilterInquiries(inquiries []models.JobInquiry, f InquiryFilter) []models.JobInquiry {
	search := strings.ToLower(f.Search)

	out := make([]models.JobInquiry, 0, len(inquiries))
	for _, inq := range inquiries {
		if search != "" &&
			!containsFold(inq.CompanyName, search) &&
			!containsFold(inq.ContactPerson, search) &&
			!containsFold(inq.Email, search) {
			continue
		}
		if !selectMatch(f.Industry, inq.Industry) {
			continue
		}
		out = append(out, inq)
	}
	return out
}

type CandidateFilter struct {
	Search      string `form:"candidate_search" json:"search"`
	Status      string `form:"candidate_status" json:"status"`
	Nationality string `form:"candidate_nationality" json:"nationality"`
}

func FilterCandidates(candidates []models.Candidate, f CandidateFilter) []models.Candidate {
	search := strings.ToLower(f.Search)

	out := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if search != "" &&
			!containsFold(c.FullName, search) &&
			!containsFold(c.Email, search) &&
			!anyContainsFold(c.Skills, search) {
			continue
		}
		if !selectMatch(f.Status, string(c.Status)) {
			continue
		}
		if !selectMatch(f.Nationality, c.Nationality) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Nationalities returns the distinct candidate nationalities, sorted.
func Nationalities(candidates []models.Candidate) []string {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0)
	for _, c := range candidates {
		if _, ok := seen[c.Nationality]; ok {
			continue
		}
		seen[c.Nationality] = struct{}{}
		out = append(out, c.Nationality)
	}
	sort.Strings(out)
	return out
}

// containsFold expects needle already lower-cased.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

func anyContainsFold(items []string, needle string) bool {
	for _, item := range items {
		if containsFold(item, needle) {
			return true
		}
	}
	return false
}

func isAll(v string) bool {
	return v == "" || v == All
}

func selectMatch(selected, value string) bool {
	return isAll(selected) || selected == value
}

func selectMatchFold(selected, value string) bool {
	return isAll(selected) || strings.EqualFold(selected, value)
}
