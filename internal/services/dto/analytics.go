package dto

import "time"

// ==============================
// ADMIN STATS
// ==============================

type StatsRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type CountBucket struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type DailyCount struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

type CandidateStats struct {
	Total         int64         `json:"total"`
	ByStatus      []CountBucket `json:"by_status"`
	Nationalities []CountBucket `json:"top_nationalities"`
	// ApprovalRate is approved / (approved + rejected), 0 when neither exists.
	ApprovalRate float64 `json:"approval_rate"`
}

type JobStats struct {
	Active     int64         `json:"active"`
	ByCategory []CountBucket `json:"by_category"`
}

type InquiryStats struct {
	Total              int64         `json:"total"`
	ByIndustry         []CountBucket `json:"by_industry"`
	RequestedPositions int64         `json:"requested_positions"`
}

// AdminStats is the overview shown above the dashboard tables.
type AdminStats struct {
	Range        StatsRange     `json:"range"`
	Candidates   CandidateStats `json:"candidates"`
	Jobs         JobStats       `json:"jobs"`
	Inquiries    InquiryStats   `json:"inquiries"`
	Applications []DailyCount   `json:"applications_per_day"`
}
