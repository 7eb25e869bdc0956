package integration_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"workbridge_backend/internal/models"
	"workbridge_backend/internal/services/dto"
	"workbridge_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applicationFields() map[string][]string {
	return map[string][]string{
		"first_name":           {"Ana"},
		"last_name":            {"Pop"},
		"email":                {"ana@example.com"},
		"phone":                {"712 345 678"},
		"nationality":          {"Romania"},
		"current_location":     {"Cluj"},
		"experience_years":     {"4"},
		"skills":               {"cooking, cleaning"},
		"preferred_industries": {"Hospitality & Tourism"},
		"preferred_countries":  {"Poland", "Germany"},
	}
}

func TestApplicationToReview(t *testing.T) {
	ts := GetTestServer(t)

	cv := helpers.Upload{Field: "cv", Name: "ana-pop.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4 cv")}
	res, body := ts.SendMultipart(t, "/api/v1/applications", "", applicationFields(), cv)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var applied struct {
		Data dto.ApplicationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &applied))
	require.NotEmpty(t, applied.Data.ID)

	var stored models.Candidate
	require.NoError(t, ts.DB.First(&stored, "id = ?", applied.Data.ID).Error)
	assert.Equal(t, "Ana Pop", stored.FullName)
	assert.Equal(t, models.CandidateStatusPending, stored.Status)
	assert.ElementsMatch(t, []string{"Poland", "Germany"}, []string(stored.PreferredCountries))
	require.NotNil(t, stored.CVURL)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/candidates/"+applied.Data.ID+"/cv", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var link dto.CVLinkResponse
	require.NoError(t, json.Unmarshal([]byte(body), &link))
	assert.NotEmpty(t, link.URL)
	assert.Positive(t, link.ExpiresIn)

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/admin/candidates/"+applied.Data.ID+"/status", token, map[string]string{"status": "interview"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, ts.DB.First(&stored, "id = ?", applied.Data.ID).Error)
	assert.Equal(t, models.CandidateStatusInterview, stored.Status)

	res, body = ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/candidates/"+applied.Data.ID+"?confirm=true", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var count int64
	ts.DB.Model(&models.Candidate{}).Where("id = ?", applied.Data.ID).Count(&count)
	assert.Zero(t, count)
}

func TestApplicationWithoutCVIsRejected(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendMultipart(t, "/api/v1/applications", "", applicationFields())
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Please upload your CV")

	var count int64
	ts.DB.Model(&models.Candidate{}).Count(&count)
	assert.Zero(t, count)
}

func TestSignedCVLinkServesFile(t *testing.T) {
	ts := GetTestServer(t)

	cv := helpers.Upload{Field: "cv", Name: "cv.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4 signed")}
	res, body := ts.SendMultipart(t, "/api/v1/applications", "", applicationFields(), cv)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var applied struct {
		Data dto.ApplicationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &applied))

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/candidates/"+applied.Data.ID+"/cv", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var link dto.CVLinkResponse
	require.NoError(t, json.Unmarshal([]byte(body), &link))

	// local links point at the configured base URL; replay the path and query here
	path := link.URL[len("http://files.test"):]
	fileRes, err := ts.Server.Client().Get(ts.Server.URL + path)
	require.NoError(t, err)
	defer fileRes.Body.Close()
	require.Equal(t, http.StatusOK, fileRes.StatusCode)
	data, err := io.ReadAll(fileRes.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 signed", string(data))
}
