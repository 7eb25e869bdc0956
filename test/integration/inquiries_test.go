package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"workbridge_backend/internal/models"
	"workbridge_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInquiryIsListedForAdmins(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/inquiries", "", map[string]any{
		"company_name":   "Build Co",
		"contact_person": "Jan Nowak",
		"email":          "jan@buildco.pl",
		"phone":          "+48 600 100 200",
		"industry":       "construction",
		"positions":      5,
		"location":       "Gdansk",
		"country":        "Poland",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/inquiries?inquiry_search=build", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var inquiries []models.JobInquiry
	require.NoError(t, json.Unmarshal([]byte(body), &inquiries))
	require.Len(t, inquiries, 1)
	assert.Equal(t, "Build Co", inquiries[0].CompanyName)
	assert.Equal(t, 5, inquiries[0].Positions)
}

func TestInquiryValidation(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/inquiries", "", map[string]any{
		"company_name": "Build Co",
		"email":        "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Please enter a valid email address")
}
