package dto

import "strings"

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"max=30"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=2000"`
}

func (ContactRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"name.required":    "Name is required",
		"name.max":         "Name must be less than 100 characters",
		"email":            "Please enter a valid email address",
		"phone":            "Phone must be less than 30 characters",
		"subject.required": "Subject is required",
		"subject.max":      "Subject must be less than 200 characters",
		"message.required": "Message is required",
		"message.max":      "Message must be less than 2000 characters",
	}
}

type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

func (r ContactRequest) Normalize() ContactMessage {
	return ContactMessage{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Phone),
		Subject: strings.TrimSpace(r.Subject),
		Message: strings.TrimSpace(r.Message),
	}
}

type ContactResponse struct {
	Message string `json:"message"`
	// Language the auto-reply was written in.
	Language string `json:"language"`
}
