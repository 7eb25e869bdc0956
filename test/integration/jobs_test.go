package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"workbridge_backend/internal/models"
	"workbridge_backend/internal/services/dto"
	"workbridge_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobLifecycle(t *testing.T) {
	ts := GetTestServer(t)
	token, adminUser := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/jobs", token, map[string]any{
		"title":                "Line Cook",
		"company":              "Sol Hotels",
		"location":             "Warsaw",
		"region":               "Poland",
		"category":             "Kitchen",
		"job_type":             "Full-time",
		"salary":               "4000-5000 PLN",
		"requirements":         "Food safety certificate\nTwo years in a busy kitchen",
		"application_deadline": "2099-12-31",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		Data models.Job `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.NotEmpty(t, created.Data.ID)
	require.NotNil(t, created.Data.CreatedBy)
	assert.Equal(t, adminUser.ID, *created.Data.CreatedBy)

	helpers.CreateJob(t, ts.DB, "Site Labourer", "Construction", "Germany")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs?category=Kitchen", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var list dto.JobListResponse
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Line Cook", list.Jobs[0].Title)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+created.Data.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var details dto.JobDetails
	require.NoError(t, json.Unmarshal([]byte(body), &details))
	assert.Equal(t, []string{"Food safety certificate", "Two years in a busy kitchen"}, details.RequirementItems)

	res, body = ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/jobs/"+created.Data.ID, token, nil)
	assert.Equal(t, http.StatusPreconditionRequired, res.StatusCode, body)
	assert.Contains(t, body, "Are you sure you want to delete this job?")

	res, body = ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/jobs/"+created.Data.ID+"?confirm=true", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+created.Data.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestAdminRoutesNeedAdmin(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	token, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleUser)
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/dashboard", token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	ts := GetTestServer(t)
	helpers.CreateUser(t, ts.DB, "admin@test.com", "password123", models.UserRoleAdmin)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "admin@test.com",
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "INVALID_CREDENTIALS")
}
