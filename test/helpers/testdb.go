package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"workbridge_backend/internal/auth"
	"workbridge_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateUser stores a user with password hashed. Status defaults to active.
func CreateUser(t *testing.T, db *gorm.DB, email, password string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       models.UserStatusActive,
	}
	require.NoError(t, db.Create(user).Error, "create user %s", email)
	return user
}

// CreateAndLoginUser creates a user and signs in through the API.
func CreateAndLoginUser(t *testing.T, ts *TestServer, role models.UserRole) (string, *models.User) {
	t.Helper()

	email := fmt.Sprintf("%s_%d@test.com", role, time.Now().UnixNano())
	password := "password123"
	user := CreateUser(t, ts.DB, email, password, role)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login failed: %s", body)

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken, user
}

func CreateAndLoginAdmin(t *testing.T, ts *TestServer) (string, *models.User) {
	return CreateAndLoginUser(t, ts, models.UserRoleAdmin)
}

// CreateJob inserts an active job directly.
func CreateJob(t *testing.T, db *gorm.DB, title, category, region string) *models.Job {
	t.Helper()
	job := &models.Job{
		Title:    title,
		Company:  "Test Company",
		Location: "Warsaw",
		Region:   region,
		Category: category,
		JobType:  models.JobTypeFullTime,
		IsActive: true,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}
