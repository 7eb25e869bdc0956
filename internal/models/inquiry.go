package models

type JobInquiry struct {
	BaseModel
	CompanyName   string  `gorm:"not null" json:"company_name"`
	ContactPerson string  `gorm:"not null" json:"contact_person"`
	Email         string  `gorm:"not null" json:"email"`
	Phone         *string `json:"phone"`
	Industry      string  `gorm:"not null;index" json:"industry"`
	Positions     int     `gorm:"not null;default:1" json:"positions"`
	Location      string  `gorm:"not null" json:"location"`
	Country       string  `gorm:"not null" json:"country"`
	JobDetails    *string `json:"job_details"`
}

func (JobInquiry) TableName() string {
	return "job_inquiries"
}
