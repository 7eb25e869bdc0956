package handlers

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"workbridge_backend/internal/forms"
	"workbridge_backend/internal/models"
	"workbridge_backend/internal/services"
	"workbridge_backend/internal/services/dto"
	"workbridge_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// multipartMemory is how much of a multipart body is held in memory before
// spilling to temp files.
const multipartMemory = 8 << 20

var applicationListFields = map[string]bool{
	"preferred_industries": true,
	"preferred_countries":  true,
}

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
	policy             forms.AttachmentPolicy
	resetDelayMS       int64
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService, policy forms.AttachmentPolicy, resetDelayMS int64) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		policy:             policy,
		resetDelayMS:       resetDelayMS,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/applications", h.Apply)
}

// Apply godoc
// @Summary Submit a job application
// @Description Multipart form with the candidate's details and a CV (PDF, DOC or DOCX up to 5MB).
// @Tags applications
// @Accept multipart/form-data
// @Produce json
// @Param cv formData file true "CV"
// @Param first_name formData string true "First name"
// @Param last_name formData string true "Last name"
// @Param email formData string true "Email"
// @Param phone formData string true "Phone number"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 413 {object} apperrors.ErrorResponse
// @Failure 415 {object} apperrors.ErrorResponse
// @Router /api/v1/applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	ctx := c.Request.Context()

	if h.policy.MaxSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.policy.MaxSize+multipartMemory)
	}
	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			h.HandleServiceError(c, apperrors.ErrFileTooLarge)
			return
		}
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid multipart form: "+err.Error()))
		return
	}
	mf := c.Request.MultipartForm
	defer mf.RemoveAll()

	form := forms.NewApplicationForm(h.validator, forms.WithAttachment(h.policy, forms.CVField), forms.WithResetDelay(0))

	fields, lists := multipartValues(mf.Value)
	if err := form.Load(fields, lists); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if files := mf.File[forms.CVField]; len(files) > 0 {
		if err := form.Attach(fileInfo(files[0])); err != nil {
			h.HandleServiceError(c, err)
			return
		}
	}

	db := h.GetDB(c)
	var candidate *models.Candidate
	_, err := form.Submit(ctx, func(ctx context.Context, app dto.CandidateApplication, cv *forms.FileInfo) error {
		var err error
		candidate, err = h.applicationService.Submit(ctx, db, app, cv)
		return err
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	notice := form.Notice()
	respondForm(c, http.StatusCreated, form, dto.ApplicationResponse{
		ID:           candidate.ID,
		Message:      notice.Message,
		ResetAfterMS: h.resetDelayMS,
	})
}

func multipartValues(values map[string][]string) (map[string]string, map[string][]string) {
	fields := map[string]string{}
	lists := map[string][]string{}
	for k, v := range values {
		if applicationListFields[k] {
			lists[k] = dedupe(append([]string(nil), v...))
			continue
		}
		if len(v) > 0 {
			fields[k] = v[0]
		}
	}
	return fields, lists
}

func fileInfo(fh *multipart.FileHeader) forms.FileInfo {
	return forms.FileInfo{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
