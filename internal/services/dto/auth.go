package dto

import (
	"strings"
	"time"

	"workbridge_backend/internal/models"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (LoginRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"email":    "Invalid email address",
		"password": "Password must be at least 6 characters",
	}
}

type Credentials struct {
	Email    string
	Password string
}

func (r LoginRequest) Normalize() Credentials {
	return Credentials{Email: strings.ToLower(strings.TrimSpace(r.Email)), Password: r.Password}
}

type AuthResponse struct {
	AccessToken string  `json:"access_token"`
	ExpiresAt   int64   `json:"expires_at"`
	User        UserDTO `json:"user"`
}

type UserDTO struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Role      models.UserRole   `json:"role"`
	Status    models.UserStatus `json:"status"`
	IsAdmin   bool              `json:"is_admin"`
	CreatedAt time.Time         `json:"created_at"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		IsAdmin:   u.IsAdmin(),
		CreatedAt: u.CreatedAt,
	}
}
