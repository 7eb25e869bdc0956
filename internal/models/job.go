package models

import (
	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	Title               string          `gorm:"not null" json:"title"`
	Company             string          `gorm:"not null" json:"company"`
	Location            string          `gorm:"not null" json:"location"`
	Region              string          `gorm:"not null;index" json:"region"`
	Category            string          `gorm:"not null;index" json:"category"`
	JobType             string          `gorm:"not null;default:'Full-time'" json:"job_type"`
	Salary              *string         `json:"salary"`
	Description         *string         `json:"description"`
	Requirements        *string         `json:"requirements"`
	Benefits            *string         `json:"benefits"`
	ApplicationDeadline *datatypes.Date `json:"application_deadline"`
	IsActive            bool            `gorm:"not null;default:true;index" json:"is_active"`
	CreatedBy           *string         `gorm:"type:uuid" json:"created_by"`
}
