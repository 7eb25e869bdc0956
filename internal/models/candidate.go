package models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Candidate struct {
	BaseModel
	FullName            string          `gorm:"not null" json:"full_name"`
	Email               string          `gorm:"not null;index" json:"email"`
	Phone               *string         `json:"phone"`
	CVURL               *string         `gorm:"column:cv_url" json:"cv_url"`
	Nationality         string          `gorm:"not null" json:"nationality"`
	CurrentLocation     *string         `json:"current_location"`
	ExperienceYears     int             `gorm:"not null;default:0" json:"experience_years"`
	DateOfBirth         *datatypes.Date `json:"date_of_birth"`
	JobID               *string         `gorm:"type:uuid" json:"job_id"`
	Skills              pq.StringArray  `gorm:"type:text[]" json:"skills"`
	PreferredIndustries pq.StringArray  `gorm:"type:text[]" json:"preferred_industries"`
	PreferredCountries  pq.StringArray  `gorm:"type:text[]" json:"preferred_countries"`
	Notes               *string         `json:"notes"`
	Status              CandidateStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CVText              *string         `gorm:"column:cv_text" json:"-"`
}
